package dto

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"dinedesk/infras/api"
	"dinedesk/internal/domains/order/model"
	"dinedesk/shared"
	"dinedesk/shared/constant"
	"dinedesk/shared/timezone"
)

const orderedItemsList = "orderedItems"

// ItemRecord is one line item. Detail responses wrap the keys in single quotes
// ('itemName') and send numbers as text, so keys are normalized before reading.
type ItemRecord map[string]json.RawMessage

func (r ItemRecord) field(names ...string) json.RawMessage {
	for key, value := range r {
		bare := strings.Trim(key, "'")
		for _, name := range names {
			if bare == name && len(value) > 0 && string(value) != "null" {
				return value
			}
		}
	}

	return nil
}

func (r ItemRecord) ToModel() model.Item {
	qty := 1
	if raw := r.field("quantity", "qty"); raw != nil {
		qty = int(shared.ParseNumber(raw))
	}

	name := shared.ParseString(r.field("name"))
	if name == "" {
		name = shared.ParseString(r.field("itemName"))
	}

	return model.Item{
		MenuID: shared.ParseString(r.field("menuid", "menuId")),
		Name:   name,
		Qty:    qty,
		Price:  shared.ParseNumber(r.field("price")),
	}
}

type OrderRecord struct {
	ID            string          `json:"_id"`
	OrderID       json.RawMessage `json:"orderId"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	TableNumber   json.RawMessage `json:"tableNumber"`
	Items         []ItemRecord    `json:"items"`
	OrderedItems  []ItemRecord    `json:"orderedItems"`
	TotalAmount   json.RawMessage `json:"totalAmount"`
	TotalBill     json.RawMessage `json:"totalBill"`
	Status        json.RawMessage `json:"status"`
	CreatedAt     string          `json:"createdAt"`
}

// StatusFromWire maps "true" to preparing and lowercases everything else.
func StatusFromWire(value string) model.Status {
	if shared.IsTrueString(value) {
		return model.StatusPreparing
	}

	return model.Status(strings.ToLower(strings.TrimSpace(value)))
}

func StatusToWire(status model.Status) string {
	if status == model.StatusPreparing {
		return constant.BoolStringTrue
	}

	return string(status)
}

func (r OrderRecord) items() []model.Item {
	records := r.Items
	if records == nil {
		records = r.OrderedItems
	}

	items := make([]model.Item, 0, len(records))
	for _, record := range records {
		items = append(items, record.ToModel())
	}

	return items
}

// Total prefers totalAmount, then totalBill, then the sum of the line items.
func (r OrderRecord) Total(items []model.Item) float64 {
	if total := shared.ParseNumber(r.TotalAmount); total != 0 {
		return total
	}

	if total := shared.ParseNumber(r.TotalBill); total != 0 {
		return total
	}

	return model.Sum(items)
}

func (r OrderRecord) ToModel() model.Order {
	items := r.items()

	return model.Order{
		ID:          r.ID,
		OrderID:     shared.ParseString(r.OrderID),
		Customer:    r.CustomerName,
		Phone:       r.CustomerPhone,
		TableNumber: shared.ParseString(r.TableNumber),
		Items:       items,
		Total:       r.Total(items),
		Status:      StatusFromWire(shared.ParseString(r.Status)),
		Datetime:    timezone.ParseTimestamp(r.CreatedAt),
	}
}

func ToModels(records []OrderRecord) []model.Order {
	res := make([]model.Order, 0, len(records))
	for _, record := range records {
		res = append(res, record.ToModel())
	}

	return res
}

// OrderDetails is the customer part of the order form.
type OrderDetails struct {
	Customer    string       `json:"customer"     validate:"notblank,max=100"`
	Phone       string       `json:"phone"        validate:"notblank,phone"`
	TableNumber string       `json:"table_number" validate:"notblank,max=20"`
	Status      model.Status `json:"status"       validate:"omitempty,oneof=preparing ready delivered cancelled"`
}

func DetailsFromModel(o model.Order) OrderDetails {
	return OrderDetails{
		Customer:    o.Customer,
		Phone:       o.Phone,
		TableNumber: o.TableNumber,
		Status:      o.Status,
	}
}

// OrderPayload is everything a create or update sends.
type OrderPayload struct {
	Details OrderDetails
	Items   []model.Item
}

func (p OrderPayload) Total() float64 {
	return model.Sum(p.Items)
}

func (p OrderPayload) appendItems(form url.Values) {
	for i, item := range p.Items {
		api.IndexedField(form, orderedItemsList, i, "itemName", item.Name, true)
		api.IndexedField(form, orderedItemsList, i, "qty", strconv.Itoa(item.Qty), true)
		api.IndexedField(form, orderedItemsList, i, "price", strconv.FormatFloat(item.Price, 'f', -1, 64), true)
		api.IndexedField(form, orderedItemsList, i, "menuid", item.MenuID, true)
	}
}

// ToCreateForm always opens the order as preparing.
func (p OrderPayload) ToCreateForm(restaurantID string) url.Values {
	form := url.Values{
		"userRestaurantId": {restaurantID},
		"customerName":     {p.Details.Customer},
		"customerPhone":    {p.Details.Phone},
		"tableNumber":      {p.Details.TableNumber},
		"totalBill":        {strconv.FormatFloat(p.Total(), 'f', -1, 64)},
		"status":           {constant.BoolStringTrue},
		"createdBy":        {restaurantID},
	}

	p.appendItems(form)

	return form
}

func (p OrderPayload) ToUpdateForm() url.Values {
	form := url.Values{
		"customerName":  {p.Details.Customer},
		"customerPhone": {p.Details.Phone},
		"tableNumber":   {p.Details.TableNumber},
		"totalBill":     {strconv.FormatFloat(p.Total(), 'f', -1, 64)},
		"status":        {StatusToWire(p.Details.Status)},
	}

	p.appendItems(form)

	return form
}

// Apply builds the record a successful write leaves in the list.
func (p OrderPayload) Apply(o model.Order) model.Order {
	o.Customer = p.Details.Customer
	o.Phone = p.Details.Phone
	o.TableNumber = p.Details.TableNumber
	o.Items = p.Items
	o.Total = p.Total()

	if p.Details.Status != "" {
		o.Status = p.Details.Status
	}

	return o
}

type StatusRequest struct {
	Status model.Status `json:"status" validate:"required,oneof=preparing ready delivered cancelled"`
}
