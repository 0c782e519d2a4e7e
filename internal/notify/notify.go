// Package notify keeps short-lived feedback messages for the views.
//
// A notification has a kind, a text and an expiry. The Bubble Tea view turns
// the command returned by Push into a DismissMsg once the TTL has elapsed;
// the script view prints notifications as they are pushed. Notifications
// carry no state the store cares about.
package notify

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/Makepad-fr/tada/internal/ui"
)

type Kind int

const (
	Success Kind = iota
	Info
	Warning
	Error
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "unknown"
}

const (
	DefaultTTL = 3 * time.Second
	// DefaultMax bounds how many notifications are shown at once.
	DefaultMax = 3
)

// Notification is one message on screen.
type Notification struct {
	ID      string
	Kind    Kind
	Text    string
	Expires time.Time
}

// DismissMsg asks the Center to drop the notification with ID.
type DismissMsg struct {
	ID string
}

// Center holds the active notifications, oldest first.
type Center struct {
	TTL time.Duration
	Max int
	Now func() time.Time

	active []Notification
}

// NewCenter returns a Center with the given TTL; ttl <= 0 uses DefaultTTL.
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{TTL: ttl, Max: DefaultMax, Now: time.Now}
}

// Push adds a notification and returns the command that dismisses it.
func (c *Center) Push(kind Kind, text string) (Notification, tea.Cmd) {
	n := Notification{
		ID:      uuid.NewString(),
		Kind:    kind,
		Text:    text,
		Expires: c.now().Add(c.TTL),
	}
	c.active = append(c.active, n)
	if c.Max > 0 && len(c.active) > c.Max {
		c.active = c.active[len(c.active)-c.Max:]
	}
	id := n.ID
	return n, tea.Tick(c.TTL, func(time.Time) tea.Msg { return DismissMsg{ID: id} })
}

// Dismiss drops the notification with id. Unknown ids are ignored.
func (c *Center) Dismiss(id string) {
	out := c.active[:0]
	for _, n := range c.active {
		if n.ID != id {
			out = append(out, n)
		}
	}
	c.active = out
}

// Active returns the notifications that have not expired yet.
func (c *Center) Active() []Notification {
	now := c.now()
	out := make([]Notification, 0, len(c.active))
	for _, n := range c.active {
		if now.Before(n.Expires) {
			out = append(out, n)
		}
	}
	return out
}

// Len reports how many notifications are held, expired or not.
func (c *Center) Len() int { return len(c.active) }

func (c *Center) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Line renders n as a single themed line.
func Line(n Notification, t ui.Theme) string {
	switch n.Kind {
	case Success:
		return t.Success.Render(t.SymDone + " " + n.Text)
	case Info:
		return t.Info.Render("ℹ " + n.Text)
	case Warning:
		return t.Warning.Render("! " + n.Text)
	default:
		return t.Err.Render("✖ " + n.Text)
	}
}

// View renders the active notifications, one per line.
func (c *Center) View(t ui.Theme) string {
	active := c.Active()
	if len(active) == 0 {
		return ""
	}
	lines := make([]string, 0, len(active))
	for _, n := range active {
		lines = append(lines, Line(n, t))
	}
	return strings.Join(lines, "\n")
}
