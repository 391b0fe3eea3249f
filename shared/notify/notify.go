// Package notify holds the toast-style notifications raised by store and workflow actions.
package notify

import (
	"net/http"
	"sync"
	"time"

	"dinedesk/shared/failure"
	"dinedesk/shared/timezone"

	"github.com/google/uuid"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

const (
	TitleSuccess            = "Success"
	TitleError              = "Error"
	TitleAuthorizationError = "Authorization Error"
	TitleValidationError    = "Validation Error"
)

type Notification struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     Variant   `json:"variant"`
	CreatedAt   time.Time `json:"created_at"`
}

func Success(description string) Notification {
	return Notification{Title: TitleSuccess, Description: description, Variant: VariantDefault}
}

func Failure(description string) Notification {
	return Notification{Title: TitleError, Description: description, Variant: VariantDestructive}
}

func Unauthorized(description string) Notification {
	return Notification{Title: TitleAuthorizationError, Description: description, Variant: VariantDestructive}
}

func Invalid(description string) Notification {
	return Notification{Title: TitleValidationError, Description: description, Variant: VariantDestructive}
}

func (n Notification) WithTitle(title string) Notification {
	n.Title = title

	return n
}

// FromError reports an expired or missing credential as an authorization error and
// anything else with the given description.
func FromError(err error, description string) Notification {
	if failure.GetCode(err) == http.StatusUnauthorized {
		return Unauthorized(err.Error())
	}

	return Failure(description)
}

type Notifier interface {
	Notify(n Notification)
}

// Discard drops every notification.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Notify(Notification) {}

// Center buffers the latest notifications of one session and fans them out to live subscribers.
type Center struct {
	mu          sync.Mutex
	size        int
	pending     []Notification
	subscribers map[int]func(Notification)
	nextID      int
}

func NewCenter(size int) *Center {
	if size <= 0 {
		size = 1
	}

	return &Center{
		size:        size,
		pending:     make([]Notification, 0, size),
		subscribers: map[int]func(Notification){},
	}
}

func (c *Center) Notify(n Notification) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	if n.CreatedAt.IsZero() {
		n.CreatedAt = timezone.Now()
	}

	if n.Variant == "" {
		n.Variant = VariantDefault
	}

	c.mu.Lock()

	c.pending = append(c.pending, n)
	if overflow := len(c.pending) - c.size; overflow > 0 {
		c.pending = append(c.pending[:0], c.pending[overflow:]...)
	}

	subscribers := make([]func(Notification), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subscribers = append(subscribers, fn)
	}

	c.mu.Unlock()

	for _, fn := range subscribers {
		fn(n)
	}
}

// Drain returns the buffered notifications oldest first and empties the buffer.
func (c *Center) Drain() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	drained := make([]Notification, len(c.pending))
	copy(drained, c.pending)
	c.pending = c.pending[:0]

	return drained
}

// Subscribe registers fn for every later notification. The returned func unregisters it.
func (c *Center) Subscribe(fn func(Notification)) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.subscribers[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		delete(c.subscribers, id)
	}
}
