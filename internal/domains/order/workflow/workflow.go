// Package workflow is the order creation and editing wizard:
// select_category -> select_items -> enter_details -> confirm -> submitted.
package workflow

import (
	"context"
	"slices"
	"sync"

	"dinedesk/infras/otel"
	menuModel "dinedesk/internal/domains/menu/model"
	"dinedesk/internal/domains/order/model"
	"dinedesk/internal/domains/order/model/dto"
	"dinedesk/shared/constant"
	"dinedesk/shared/failure"
	"dinedesk/shared/notify"
	"dinedesk/shared/validator"

	"github.com/rs/zerolog/log"
)

type Step string

const (
	StepSelectCategory Step = "select_category"
	StepSelectItems    Step = "select_items"
	StepEnterDetails   Step = "enter_details"
	StepConfirm        Step = "confirm"
	StepSubmitted      Step = "submitted"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

const (
	MessageLoadItemsFailed = "Failed to load menu items"
	MessageEmptyCart       = "Please add at least one item to the order"
	MessageItemUnavailable = "Menu item is unavailable"
)

// ItemLoader fetches the menu items of one category.
type ItemLoader func(ctx context.Context, category menuModel.Category) ([]menuModel.Item, error)

// SubmitFunc sends the order. orderID is empty in create mode. A failed submit has
// already been reported to the operator.
type SubmitFunc func(ctx context.Context, mode Mode, orderID string, payload dto.OrderPayload) error

type State struct {
	Step     Step                `json:"step"`
	Mode     Mode                `json:"mode"`
	Active   bool                `json:"active"`
	OrderID  string              `json:"order_id,omitempty"`
	Category *menuModel.Category `json:"category,omitempty"`
	Items    []menuModel.Item    `json:"items"`
	Cart     []model.Item        `json:"cart"`
	Total    float64             `json:"total"`
	Details  dto.OrderDetails    `json:"details"`
}

type Machine struct {
	load     ItemLoader
	notifier notify.Notifier
	otel     otel.Otel

	mu       sync.Mutex
	run      uint64
	step     Step
	mode     Mode
	active   bool
	orderID  string
	category *menuModel.Category
	items    []menuModel.Item
	carts    map[Mode][]model.Item
	details  dto.OrderDetails
}

func New(load ItemLoader, notifier notify.Notifier, otel otel.Otel) *Machine {
	if notifier == nil {
		notifier = notify.Discard
	}

	return &Machine{
		load:     load,
		notifier: notifier,
		otel:     otel,
		step:     StepSelectCategory,
		mode:     ModeCreate,
		carts:    map[Mode][]model.Item{ModeCreate: {}, ModeEdit: {}},
	}
}

func invalidTransition(action string, step Step) error {
	return failure.BadRequestFromString("cannot " + action + " while in step " + string(step))
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stateLocked()
}

func (m *Machine) stateLocked() State {
	cart := slices.Clone(m.carts[m.mode])

	state := State{
		Step:    m.step,
		Mode:    m.mode,
		Active:  m.active,
		OrderID: m.orderID,
		Items:   slices.Clone(m.items),
		Cart:    cart,
		Total:   model.Sum(cart),
		Details: m.details,
	}

	if m.category != nil {
		category := *m.category
		state.Category = &category
	}

	if state.Items == nil {
		state.Items = []menuModel.Item{}
	}

	return state
}

// Start opens the wizard for a new order. A creation cart left from an earlier
// session of the wizard is kept.
func (m *Machine) Start() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.mode == ModeEdit || !m.active {
		m.details = dto.OrderDetails{}
	}

	m.run++
	m.mode = ModeCreate
	m.active = true
	m.orderID = ""
	m.step = StepSelectCategory
	m.category = nil
	m.items = nil
	m.carts[ModeEdit] = []model.Item{}

	return m.stateLocked()
}

// StartEdit loads an existing order into the edit cart and goes straight to the details.
func (m *Machine) StartEdit(orderID string, details dto.OrderDetails, lines []model.Item) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.run++
	m.mode = ModeEdit
	m.active = true
	m.orderID = orderID
	m.step = StepEnterDetails
	m.category = nil
	m.items = nil
	m.details = details
	m.carts[ModeEdit] = slices.Clone(lines)

	if m.carts[ModeEdit] == nil {
		m.carts[ModeEdit] = []model.Item{}
	}

	return m.stateLocked()
}

func (m *Machine) SelectCategory(ctx context.Context, category menuModel.Category) (res State, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelWorkflowScopeName, constant.OtelWorkflowScopeName+".SelectCategory")
	defer scope.End()
	defer scope.TraceIfError(&err)

	m.mu.Lock()
	if !m.canSelectLocked() {
		state := m.stateLocked()
		m.mu.Unlock()

		return state, invalidTransition("select a category", state.Step)
	}
	run := m.run
	m.mu.Unlock()

	// unlocked while the backend answers
	items, err := m.load(ctx, category)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		log.Error().Err(err).Str("category_id", category.ID).Msg("failed to load category items")

		m.notifier.Notify(notify.FromError(err, MessageLoadItemsFailed))

		return m.stateLocked(), err
	}

	if m.run != run || !m.canSelectLocked() {
		log.Debug().Str("category_id", category.ID).Msg("workflow moved on while loading items")

		return m.stateLocked(), invalidTransition("select a category", m.step)
	}

	m.category = &category
	m.items = items
	m.step = StepSelectItems

	return m.stateLocked(), nil
}

func (m *Machine) canSelectLocked() bool {
	return m.active && (m.step == StepSelectCategory || m.step == StepSelectItems)
}

func (m *Machine) Back() (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.step {
	case StepSelectItems, StepEnterDetails, StepConfirm:
		if !m.active {
			return m.stateLocked(), invalidTransition("go back", m.step)
		}

		m.step = StepSelectCategory

		return m.stateLocked(), nil
	default:
		return m.stateLocked(), invalidTransition("go back", m.step)
	}
}

// AddItem puts one unit of a menu item of the selected category into the cart.
func (m *Machine) AddItem(menuItemID string) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active || m.step != StepSelectItems {
		return m.stateLocked(), invalidTransition("add an item", m.step)
	}

	idx := slices.IndexFunc(m.items, func(item menuModel.Item) bool { return item.ID == menuItemID })
	if idx < 0 {
		return m.stateLocked(), failure.NotFound(menuModel.EntityName)
	}

	item := m.items[idx]
	if !item.Available {
		return m.stateLocked(), failure.BadRequestFromString(MessageItemUnavailable)
	}

	cart := m.carts[m.mode]
	if line := slices.IndexFunc(cart, func(l model.Item) bool { return l.MenuID == item.ID }); line >= 0 {
		cart[line].Qty++

		return m.stateLocked(), nil
	}

	m.carts[m.mode] = append(cart, model.Item{MenuID: item.ID, Name: item.Name, Qty: 1, Price: item.Price})

	return m.stateLocked(), nil
}

func (m *Machine) editLine(menuItemID string, fn func(cart []model.Item, idx int) []model.Item) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active || m.step == StepSubmitted {
		return m.stateLocked(), invalidTransition("change the cart", m.step)
	}

	cart := m.carts[m.mode]

	idx := slices.IndexFunc(cart, func(l model.Item) bool { return l.MenuID == menuItemID })
	if idx < 0 {
		return m.stateLocked(), failure.NotFound("order line")
	}

	m.carts[m.mode] = fn(cart, idx)

	return m.stateLocked(), nil
}

func (m *Machine) Increment(menuItemID string) (State, error) {
	return m.editLine(menuItemID, func(cart []model.Item, idx int) []model.Item {
		cart[idx].Qty++

		return cart
	})
}

// Decrement removes the line when its quantity would drop below one.
func (m *Machine) Decrement(menuItemID string) (State, error) {
	return m.editLine(menuItemID, func(cart []model.Item, idx int) []model.Item {
		if cart[idx].Qty <= 1 {
			return slices.Delete(cart, idx, idx+1)
		}

		cart[idx].Qty--

		return cart
	})
}

func (m *Machine) RemoveLine(menuItemID string) (State, error) {
	return m.editLine(menuItemID, func(cart []model.Item, idx int) []model.Item {
		return slices.Delete(cart, idx, idx+1)
	})
}

func (m *Machine) Total() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return model.Sum(m.carts[m.mode])
}

func (m *Machine) Proceed() (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active || (m.step != StepSelectCategory && m.step != StepSelectItems) {
		return m.stateLocked(), invalidTransition("proceed", m.step)
	}

	if len(m.carts[m.mode]) == 0 {
		return m.stateLocked(), failure.BadRequestFromString(MessageEmptyCart)
	}

	m.step = StepEnterDetails

	return m.stateLocked(), nil
}

// SetDetails validates the customer details. New orders always open as preparing,
// so the status is only kept when editing.
func (m *Machine) SetDetails(details dto.OrderDetails) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active || m.step != StepEnterDetails {
		return m.stateLocked(), invalidTransition("enter details", m.step)
	}

	if m.mode == ModeCreate {
		details.Status = ""
	} else if details.Status == "" {
		details.Status = m.details.Status
	}

	if err := validator.ValidateStruct(&details); err != nil {
		return m.stateLocked(), err //nolint:wrapcheck
	}

	if len(m.carts[m.mode]) == 0 {
		return m.stateLocked(), failure.BadRequestFromString(MessageEmptyCart)
	}

	m.details = details
	m.step = StepConfirm

	return m.stateLocked(), nil
}

func (m *Machine) Submit(ctx context.Context, submit SubmitFunc) (res State, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelWorkflowScopeName, constant.OtelWorkflowScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(&err)

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active || m.step != StepConfirm {
		return m.stateLocked(), invalidTransition("submit", m.step)
	}

	payload := dto.OrderPayload{Details: m.details, Items: slices.Clone(m.carts[m.mode])}

	if err = submit(ctx, m.mode, m.orderID, payload); err != nil {
		return m.stateLocked(), err
	}

	m.resetLocked()
	m.step = StepSubmitted

	return m.stateLocked(), nil
}

// Cancel abandons the wizard and empties both carts.
func (m *Machine) Cancel() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.resetLocked()

	return m.stateLocked()
}

func (m *Machine) resetLocked() {
	m.run++
	m.step = StepSelectCategory
	m.active = false
	m.orderID = ""
	m.category = nil
	m.items = nil
	m.details = dto.OrderDetails{}
	m.carts[ModeCreate] = []model.Item{}
	m.carts[ModeEdit] = []model.Item{}
}
