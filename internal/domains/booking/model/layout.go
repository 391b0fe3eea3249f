package model

import (
	"strconv"
	"strings"

	"dinedesk/shared/session"
)

// Layout numbers the tables of every active table type from 1 and marks the ones
// held by a booking that is not cancelled.
func Layout(tableTypes []session.TableType, bookings []Booking) []TableGroup {
	held := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		if b.Status == StatusCancelled || b.TableNumber == "" {
			continue
		}

		held[strings.TrimSpace(b.TableNumber)] = true
	}

	groups := make([]TableGroup, 0, len(tableTypes))

	for _, tableType := range tableTypes {
		if !tableType.Active {
			continue
		}

		tables := make([]Table, 0, max(tableType.NoOfTables, 0))
		for number := 1; number <= tableType.NoOfTables; number++ {
			label := strconv.Itoa(number)
			tables = append(tables, Table{Number: number, Label: label, Booked: held[label]})
		}

		groups = append(groups, TableGroup{
			TypeID:   tableType.ID,
			TypeName: tableType.Name,
			Tables:   tables,
		})
	}

	return groups
}
