// Package notify surfaces transient, fire-and-forget messages to the user.
// A session shows at most one notification at a time: a newly issued message
// preempts the current one rather than stacking, and every message dismisses
// itself after a fixed duration.
package notify

import (
	"sync"
	"time"
)

// Severity classifies a notification for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// DefaultDismissAfter is how long a notification stays visible.
const DefaultDismissAfter = 3 * time.Second

// Notification is one transient message.
type Notification struct {
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
	IssuedAt time.Time `json:"issued_at"`
}

type entry struct {
	notification Notification
	timer        *time.Timer
	gen          uint64
}

// Center tracks the currently visible notification per session.
type Center struct {
	mu           sync.Mutex
	dismissAfter time.Duration
	current      map[string]*entry
	gen          uint64
}

// NewCenter creates a notification center with the given auto-dismiss
// duration. A non-positive duration falls back to DefaultDismissAfter.
func NewCenter(dismissAfter time.Duration) *Center {
	if dismissAfter <= 0 {
		dismissAfter = DefaultDismissAfter
	}
	return &Center{
		dismissAfter: dismissAfter,
		current:      make(map[string]*entry),
	}
}

// Show issues a notification for the session, replacing any currently
// visible one and restarting the auto-dismiss clock.
func (c *Center) Show(sessionID, message string, severity Severity) Notification {
	n := Notification{
		Message:  message,
		Severity: severity,
		IssuedAt: time.Now().UTC(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.current[sessionID]; ok {
		prev.timer.Stop()
	}

	c.gen++
	gen := c.gen
	e := &entry{notification: n, gen: gen}
	e.timer = time.AfterFunc(c.dismissAfter, func() {
		c.expire(sessionID, gen)
	})
	c.current[sessionID] = e

	return n
}

// Current returns the session's visible notification, if any.
func (c *Center) Current(sessionID string) (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.current[sessionID]
	if !ok {
		return Notification{}, false
	}
	return e.notification, true
}

// Dismiss removes the session's visible notification immediately.
func (c *Center) Dismiss(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.current[sessionID]; ok {
		e.timer.Stop()
		delete(c.current, sessionID)
	}
}

// expire clears the notification only if it is still the one the timer was
// armed for; a preempting Show leaves the newer message in place.
func (c *Center) expire(sessionID string, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.current[sessionID]; ok && e.gen == gen {
		delete(c.current, sessionID)
	}
}
