package store

import (
	"go.uber.org/zap"

	"github.com/idilsaglam/shoplist/internal/model"
)

// Listener is called after every successful dispatch.
type Listener func(prev, next model.List, a model.Action)

// Store owns the single current list. It is driven from the UI event loop
// and is not safe for concurrent use.
type Store struct {
	state     model.List
	listeners []subscription
	nextSub   int
	log       *zap.Logger
}

type subscription struct {
	id int
	fn Listener
}

// New returns a store holding an empty list. A nil logger disables logging.
func New(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{log: log}
}

// State returns the current list snapshot.
func (s *Store) State() model.List { return s.state }

// Dispatch applies a to the current list. On error the state is unchanged
// and no listener runs.
func (s *Store) Dispatch(a model.Action) error {
	prev := s.state
	next, err := model.Reduce(prev, a)
	if err != nil {
		s.log.Warn("action rejected",
			zap.String("op", string(a.Op)),
			zap.Int("id", a.ID),
			zap.Error(err),
		)
		return err
	}
	s.state = next
	s.log.Debug("action applied",
		zap.String("op", string(a.Op)),
		zap.Int("id", a.ID),
		zap.Int("items", next.Len()),
		zap.Int("editing_id", next.EditingID),
	)
	for _, sub := range s.listeners {
		sub.fn(prev, next, a)
	}
	return nil
}

// Subscribe registers fn and returns a func that removes it.
func (s *Store) Subscribe(fn Listener) (cancel func()) {
	s.nextSub++
	id := s.nextSub
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}
