package workflow_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"dinedesk/infras/otel/mocks"
	menuModel "dinedesk/internal/domains/menu/model"
	"dinedesk/internal/domains/order/model"
	"dinedesk/internal/domains/order/model/dto"
	"dinedesk/internal/domains/order/workflow"
	"dinedesk/shared/failure"
	"dinedesk/shared/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	drinks = menuModel.Category{ID: "cat-1", Name: "Drinks", Active: true}
	menu   = []menuModel.Item{
		{ID: "m-1", CategoryID: "cat-1", Name: "Tea", Price: 10, Available: true},
		{ID: "m-2", CategoryID: "cat-1", Name: "Juice", Price: 5, Available: true},
		{ID: "m-3", CategoryID: "cat-1", Name: "Shake", Price: 7, Available: false},
	}
	details = dto.OrderDetails{Customer: "Ann", Phone: "+1 555 0100", TableNumber: "4"}
)

type recorder struct {
	notes []notify.Notification
}

func (r *recorder) Notify(n notify.Notification) {
	r.notes = append(r.notes, n)
}

func loader(items []menuModel.Item, err error) workflow.ItemLoader {
	return func(context.Context, menuModel.Category) ([]menuModel.Item, error) {
		return items, err
	}
}

func newMachine(t *testing.T, load workflow.ItemLoader) (*workflow.Machine, *recorder) {
	t.Helper()

	rec := &recorder{}

	return workflow.New(load, rec, mocks.NewOtel()), rec
}

// toConfirm drives a creation wizard with 2x Tea and 1x Juice to the confirm step.
func toConfirm(t *testing.T, m *workflow.Machine) {
	t.Helper()

	m.Start()

	_, err := m.SelectCategory(context.Background(), drinks)
	require.NoError(t, err)

	for _, id := range []string{"m-1", "m-1", "m-2"} {
		_, err = m.AddItem(id)
		require.NoError(t, err)
	}

	_, err = m.Proceed()
	require.NoError(t, err)

	_, err = m.SetDetails(details)
	require.NoError(t, err)
}

func TestHappyPath(t *testing.T) {
	m, rec := newMachine(t, loader(menu, nil))
	toConfirm(t, m)

	state := m.State()
	assert.Equal(t, workflow.StepConfirm, state.Step)
	assert.Equal(t, []model.Item{
		{MenuID: "m-1", Name: "Tea", Qty: 2, Price: 10},
		{MenuID: "m-2", Name: "Juice", Qty: 1, Price: 5},
	}, state.Cart)
	assert.InDelta(t, 25.0, state.Total, 0.001)

	var sent dto.OrderPayload

	state, err := m.Submit(context.Background(), func(_ context.Context, mode workflow.Mode, orderID string, payload dto.OrderPayload) error {
		assert.Equal(t, workflow.ModeCreate, mode)
		assert.Empty(t, orderID)

		sent = payload

		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, workflow.StepSubmitted, state.Step)
	assert.False(t, state.Active)
	assert.Empty(t, state.Cart)
	assert.Equal(t, dto.OrderDetails{}, state.Details)
	assert.InDelta(t, 25.0, sent.Total(), 0.001)
	assert.Equal(t, "Ann", sent.Details.Customer)
	assert.Empty(t, rec.notes)
}

func TestSubmitFailureKeepsCart(t *testing.T) {
	m, _ := newMachine(t, loader(menu, nil))
	toConfirm(t, m)

	state, err := m.Submit(context.Background(), func(context.Context, workflow.Mode, string, dto.OrderPayload) error {
		return errors.New("boom")
	})

	require.Error(t, err)
	assert.Equal(t, workflow.StepConfirm, state.Step)
	assert.True(t, state.Active)
	assert.Len(t, state.Cart, 2)
	assert.Equal(t, details.Customer, state.Details.Customer)
}

func TestSelectCategoryFailure(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantTitle string
		wantDesc  string
	}{
		{
			name:      "upstream error",
			err:       failure.FromUpstream(http.StatusInternalServerError, "down"),
			wantTitle: notify.TitleError,
			wantDesc:  workflow.MessageLoadItemsFailed,
		},
		{
			name:      "missing token",
			err:       failure.MissingUpstreamToken,
			wantTitle: notify.TitleAuthorizationError,
			wantDesc:  failure.MissingUpstreamToken.Message,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, rec := newMachine(t, loader(nil, tt.err))
			m.Start()

			state, err := m.SelectCategory(context.Background(), drinks)

			require.Error(t, err)
			assert.Equal(t, workflow.StepSelectCategory, state.Step)
			assert.Nil(t, state.Category)
			require.Len(t, rec.notes, 1)
			assert.Equal(t, tt.wantTitle, rec.notes[0].Title)
			assert.Equal(t, tt.wantDesc, rec.notes[0].Description)
		})
	}
}

func TestCartOperations(t *testing.T) {
	m, _ := newMachine(t, loader(menu, nil))
	m.Start()

	_, err := m.SelectCategory(context.Background(), drinks)
	require.NoError(t, err)

	_, err = m.AddItem("m-3")
	require.Error(t, err)

	_, err = m.AddItem("missing")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	_, err = m.AddItem("m-1")
	require.NoError(t, err)

	state, err := m.Increment("m-1")
	require.NoError(t, err)
	assert.Equal(t, 2, state.Cart[0].Qty)

	state, err = m.Decrement("m-1")
	require.NoError(t, err)
	assert.Equal(t, 1, state.Cart[0].Qty)

	state, err = m.Decrement("m-1")
	require.NoError(t, err)
	assert.Empty(t, state.Cart)

	_, err = m.AddItem("m-2")
	require.NoError(t, err)

	state, err = m.RemoveLine("m-2")
	require.NoError(t, err)
	assert.Empty(t, state.Cart)
	assert.Zero(t, m.Total())

	_, err = m.RemoveLine("m-2")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestInvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		run  func(m *workflow.Machine) error
	}{
		{
			name: "proceed with empty cart",
			run: func(m *workflow.Machine) error {
				m.Start()
				_, err := m.Proceed()

				return err
			},
		},
		{
			name: "add item before choosing a category",
			run: func(m *workflow.Machine) error {
				m.Start()
				_, err := m.AddItem("m-1")

				return err
			},
		},
		{
			name: "back from select category",
			run: func(m *workflow.Machine) error {
				m.Start()
				_, err := m.Back()

				return err
			},
		},
		{
			name: "details before proceeding",
			run: func(m *workflow.Machine) error {
				m.Start()
				_, err := m.SetDetails(details)

				return err
			},
		},
		{
			name: "submit while inactive",
			run: func(m *workflow.Machine) error {
				_, err := m.Submit(context.Background(), func(context.Context, workflow.Mode, string, dto.OrderPayload) error {
					return nil
				})

				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newMachine(t, loader(menu, nil))

			err := tt.run(m)

			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestSetDetailsValidation(t *testing.T) {
	tests := []struct {
		name    string
		details dto.OrderDetails
		wantErr bool
	}{
		{name: "valid", details: details},
		{name: "blank name", details: dto.OrderDetails{Customer: " ", Phone: "+1 555 0100", TableNumber: "4"}, wantErr: true},
		{name: "bad phone", details: dto.OrderDetails{Customer: "Ann", Phone: "abc", TableNumber: "4"}, wantErr: true},
		{name: "missing table", details: dto.OrderDetails{Customer: "Ann", Phone: "+1 555 0100"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newMachine(t, loader(menu, nil))
			m.Start()

			_, err := m.SelectCategory(context.Background(), drinks)
			require.NoError(t, err)
			_, err = m.AddItem("m-1")
			require.NoError(t, err)
			_, err = m.Proceed()
			require.NoError(t, err)

			state, err := m.SetDetails(tt.details)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, workflow.StepEnterDetails, state.Step)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, workflow.StepConfirm, state.Step)
		})
	}
}

func TestBackKeepsCart(t *testing.T) {
	m, _ := newMachine(t, loader(menu, nil))
	toConfirm(t, m)

	state, err := m.Back()

	require.NoError(t, err)
	assert.Equal(t, workflow.StepSelectCategory, state.Step)
	assert.Len(t, state.Cart, 2)
}

func TestEditUsesSeparateCart(t *testing.T) {
	m, _ := newMachine(t, loader(menu, nil))
	m.Start()

	_, err := m.SelectCategory(context.Background(), drinks)
	require.NoError(t, err)
	_, err = m.AddItem("m-2")
	require.NoError(t, err)

	lines := []model.Item{{MenuID: "m-1", Name: "Tea", Qty: 3, Price: 10}}
	editDetails := details
	editDetails.Status = model.StatusReady

	state := m.StartEdit("ord-9", editDetails, lines)
	assert.Equal(t, workflow.ModeEdit, state.Mode)
	assert.Equal(t, workflow.StepEnterDetails, state.Step)
	assert.Equal(t, lines, state.Cart)

	state, err = m.SetDetails(dto.OrderDetails{Customer: "Ann B", Phone: "+1 555 0100", TableNumber: "5"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusReady, state.Details.Status)

	var gotMode workflow.Mode

	var gotID string

	state, err = m.Submit(context.Background(), func(_ context.Context, mode workflow.Mode, orderID string, payload dto.OrderPayload) error {
		gotMode, gotID = mode, orderID
		assert.InDelta(t, 30.0, payload.Total(), 0.001)

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, workflow.ModeEdit, gotMode)
	assert.Equal(t, "ord-9", gotID)
	assert.Equal(t, workflow.StepSubmitted, state.Step)
}

func TestStartKeepsCreationCartAfterEdit(t *testing.T) {
	m, _ := newMachine(t, loader(menu, nil))
	m.Start()

	_, err := m.SelectCategory(context.Background(), drinks)
	require.NoError(t, err)
	_, err = m.AddItem("m-2")
	require.NoError(t, err)

	m.StartEdit("ord-9", details, []model.Item{{MenuID: "m-1", Name: "Tea", Qty: 1, Price: 10}})

	state := m.Start()
	assert.Equal(t, workflow.ModeCreate, state.Mode)
	assert.Equal(t, []model.Item{{MenuID: "m-2", Name: "Juice", Qty: 1, Price: 5}}, state.Cart)
}

func TestCancelResets(t *testing.T) {
	m, _ := newMachine(t, loader(menu, nil))
	toConfirm(t, m)

	state := m.Cancel()

	assert.False(t, state.Active)
	assert.Equal(t, workflow.StepSelectCategory, state.Step)
	assert.Empty(t, state.Cart)
	assert.Equal(t, dto.OrderDetails{}, state.Details)
}

func blockingLoader(entered chan<- struct{}, release <-chan struct{}) workflow.ItemLoader {
	return func(context.Context, menuModel.Category) ([]menuModel.Item, error) {
		close(entered)
		<-release

		return menu, nil
	}
}

func TestStateReadableWhileItemsLoad(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	m, _ := newMachine(t, blockingLoader(entered, release))
	m.Start()

	done := make(chan workflow.State, 1)
	go func() {
		state, err := m.SelectCategory(context.Background(), drinks)
		assert.NoError(t, err)
		done <- state
	}()

	<-entered

	read := make(chan workflow.State, 1)
	go func() { read <- m.State() }()

	select {
	case state := <-read:
		assert.Equal(t, workflow.StepSelectCategory, state.Step)
	case <-time.After(time.Second):
		t.Fatal("state blocked while items were loading")
	}

	close(release)

	state := <-done
	assert.Equal(t, workflow.StepSelectItems, state.Step)
	assert.Len(t, state.Items, len(menu))
}

func TestSelectCategoryDroppedAfterWorkflowMovedOn(t *testing.T) {
	tests := []struct {
		name     string
		meanwhile func(m *workflow.Machine)
		wantStep workflow.Step
		active   bool
	}{
		{
			name:     "cancelled",
			meanwhile: func(m *workflow.Machine) { m.Cancel() },
			wantStep: workflow.StepSelectCategory,
		},
		{
			name: "cancelled and restarted",
			meanwhile: func(m *workflow.Machine) {
				m.Cancel()
				m.Start()
			},
			wantStep: workflow.StepSelectCategory,
			active:   true,
		},
		{
			name: "switched to edit",
			meanwhile: func(m *workflow.Machine) {
				m.StartEdit("ord-9", details, []model.Item{{MenuID: "m-1", Name: "Tea", Qty: 1, Price: 10}})
			},
			wantStep: workflow.StepEnterDetails,
			active:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entered := make(chan struct{})
			release := make(chan struct{})
			m, _ := newMachine(t, blockingLoader(entered, release))
			m.Start()

			type outcome struct {
				state workflow.State
				err   error
			}
			done := make(chan outcome, 1)
			go func() {
				state, err := m.SelectCategory(context.Background(), drinks)
				done <- outcome{state: state, err: err}
			}()

			<-entered
			tt.meanwhile(m)
			close(release)

			res := <-done
			require.Error(t, res.err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(res.err))
			assert.Equal(t, tt.wantStep, res.state.Step)
			assert.Equal(t, tt.active, res.state.Active)
			assert.Nil(t, res.state.Category)
			assert.Empty(t, res.state.Items)
		})
	}
}
