// Package selector implements the exclusive mine choice of the dashboard.
package selector

import (
	"errors"
	"fmt"
	"sync"

	"rockguard/internal/models"
)

// ErrUnknownMine is returned when a selection names a mine outside the list.
var ErrUnknownMine = errors.New("unknown mine")

// ErrNoMines is returned when a selector is built from an empty list.
var ErrNoMines = errors.New("selector needs at least one mine")

// Listener is notified after every selection. It runs while the selection is
// held, so it must not call Select.
type Listener func(models.Mine)

// Selector holds exactly one selected mine out of a fixed list.
type Selector struct {
	// sel orders whole selections: update plus notification.
	sel sync.Mutex

	mu        sync.RWMutex
	mines     []models.Mine
	current   int
	listeners []Listener
}

// New creates a selector over mines with the first one selected.
func New(mines []models.Mine) (*Selector, error) {
	if len(mines) == 0 {
		return nil, ErrNoMines
	}
	return &Selector{mines: append([]models.Mine(nil), mines...)}, nil
}

// Mines returns the choices in display order.
func (s *Selector) Mines() []models.Mine {
	return append([]models.Mine(nil), s.mines...)
}

// Current returns the selected mine.
func (s *Selector) Current() models.Mine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mines[s.current]
}

// IsSelected reports whether name is the selected mine.
func (s *Selector) IsSelected(name string) bool {
	return s.Current().Name == name
}

// OnChange registers l to be called after each selection.
func (s *Selector) OnChange(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Select makes the mine called name the current one and notifies listeners.
// Selecting the current mine notifies them again. Concurrent calls are
// serialized, so the last listener call always matches Current.
func (s *Selector) Select(name string) (models.Mine, error) {
	s.sel.Lock()
	defer s.sel.Unlock()

	s.mu.Lock()
	idx := -1
	for i, m := range s.mines {
		if m.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.Mine{}, fmt.Errorf("selector: %q: %w", name, ErrUnknownMine)
	}
	s.current = idx
	mine := s.mines[idx]
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(mine)
	}
	return mine, nil
}
