// Package store holds the todo collection and the intents that mutate it.
//
// All changes go through Dispatch, which runs the pure Reduce function and
// keeps the result. None of the intents can fail: an intent naming an id the
// store does not hold is a no-op, reported as Result.Changed == false.
package store

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/model"
)

// Result describes the outcome of a dispatched intent.
type Result struct {
	Intent  Intent
	Changed bool
	// Item is the affected item after the change (before it for deletes).
	// Zero when Changed is false.
	Item model.Item
}

// Store owns one collection. It is not safe for concurrent use; a single
// owner (the TUI loop or the script runner) drives it.
type Store struct {
	items  []model.Item
	ids    IDSource
	logger *log.Logger
	strict bool
}

// Option configures a Store.
type Option func(*Store)

// WithIDSource replaces the default Counter.
func WithIDSource(src IDSource) Option {
	return func(s *Store) {
		if src != nil {
			s.ids = src
		}
	}
}

// WithLogger sets the logger used to trace dispatches at debug level.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStrictText makes Add and Edit with blank text no-ops.
func WithStrictText(strict bool) Option {
	return func(s *Store) { s.strict = strict }
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		items:  []model.Item{},
		ids:    &Counter{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies in and reports what happened.
func (s *Store) Dispatch(in Intent) Result {
	if s.strict && (in.Kind == KindAdd || in.Kind == KindEdit) && strings.TrimSpace(in.Text) == "" {
		s.logger.Debug("blank text ignored", "intent", in.Kind)
		return Result{Intent: in}
	}

	var before model.Item
	switch in.Kind {
	case KindAdd:
		in.ID = s.ids.Next()
	case KindToggle, KindEdit, KindDelete:
		i := indexOf(s.items, in.ID)
		if i < 0 {
			s.logger.Debug("no matching item", "intent", in.Kind, "id", in.ID)
			return Result{Intent: in}
		}
		before = s.items[i]
	default:
		s.logger.Warn("unknown intent", "kind", in.Kind)
		return Result{Intent: in}
	}

	s.items = Reduce(s.items, in)

	res := Result{Intent: in, Changed: true, Item: before}
	if in.Kind != KindDelete {
		res.Item, _ = s.Find(in.ID)
	}
	s.logger.Debug("dispatched", "intent", in.Kind, "id", in.ID, "items", len(s.items))
	return res
}

// Items returns a copy of the collection in insertion order.
func (s *Store) Items() []model.Item {
	return model.Clone(s.items)
}

// Find returns the item with the given id.
func (s *Store) Find(id int64) (model.Item, bool) {
	if i := indexOf(s.items, id); i >= 0 {
		return s.items[i], true
	}
	return model.Item{}, false
}

func (s *Store) Len() int { return len(s.items) }

// Stats counts completed and pending items.
func (s *Store) Stats() (done, pending int) {
	return model.Stats(s.items)
}
