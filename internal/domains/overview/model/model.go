package model

import "dinedesk/shared/notify"

// Badges counts the records of each view that arrived after the operator last opened it.
type Badges struct {
	CallLogs  int `json:"call_logs"`
	Bookings  int `json:"bookings"`
	Orders    int `json:"orders"`
	Feedbacks int `json:"feedbacks"`
}

func (b Badges) Total() int {
	return b.CallLogs + b.Bookings + b.Orders + b.Feedbacks
}

type BadgesResponse struct {
	Badges
	Total int `json:"total"`
}

type NotificationsResponse struct {
	Notifications []notify.Notification `json:"notifications"`
}
