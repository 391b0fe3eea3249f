package notify_test

import (
	"fmt"
	"testing"

	"dinedesk/shared/notify"

	"github.com/stretchr/testify/assert"
)

func TestCenterDrain(t *testing.T) {
	center := notify.NewCenter(3)

	for i := range 5 {
		center.Notify(notify.Success(fmt.Sprintf("event %d", i)))
	}

	drained := center.Drain()

	assert.Len(t, drained, 3)
	assert.Equal(t, "event 2", drained[0].Description)
	assert.Equal(t, "event 4", drained[2].Description)
	assert.NotEmpty(t, drained[0].ID)
	assert.False(t, drained[0].CreatedAt.IsZero())

	assert.Empty(t, center.Drain())
}

func TestCenterSubscribe(t *testing.T) {
	center := notify.NewCenter(10)

	var received []notify.Notification
	cancel := center.Subscribe(func(n notify.Notification) {
		received = append(received, n)
	})

	center.Notify(notify.Failure("Failed to delete booking"))
	cancel()
	center.Notify(notify.Success("ignored"))

	assert.Len(t, received, 1)
	assert.Equal(t, notify.TitleError, received[0].Title)
	assert.Equal(t, notify.VariantDestructive, received[0].Variant)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		n       notify.Notification
		title   string
		variant notify.Variant
	}{
		{name: "success", n: notify.Success("ok"), title: notify.TitleSuccess, variant: notify.VariantDefault},
		{name: "failure", n: notify.Failure("no"), title: notify.TitleError, variant: notify.VariantDestructive},
		{name: "unauthorized", n: notify.Unauthorized("no"), title: notify.TitleAuthorizationError, variant: notify.VariantDestructive},
		{name: "invalid", n: notify.Invalid("no"), title: notify.TitleValidationError, variant: notify.VariantDestructive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.title, tt.n.Title)
			assert.Equal(t, tt.variant, tt.n.Variant)
		})
	}
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		notify.Discard.Notify(notify.Success("nothing"))
	})
}
