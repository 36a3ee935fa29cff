// Package currency tracks which currency toggle buttons are active.
package currency

import (
	"context"
	"fmt"

	"github.com/sw33tLie/bocheck/pkg/failure"
	"github.com/sw33tLie/bocheck/pkg/projects"
)

const (
	StateActive   = "active"
	StateInactive = "inactive"
)

// Store persists one flag per button, keyed by the currency code text.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Deleter is implemented by stores that can forget a key. A forgotten
// button reads as inactive.
type Deleter interface {
	Delete(ctx context.Context, key string) error
}

// Button is a rendered toggle.
type Button struct {
	Code   string
	Active bool
}

type Selector struct {
	Store Store
}

func NewSelector(store Store) *Selector {
	return &Selector{Store: store}
}

// Active returns the active currencies of project in list order.
// An empty result means nothing to scrape; it is not an error.
func (s *Selector) Active(ctx context.Context, project string) ([]string, error) {
	buttons, err := s.Buttons(ctx, project)
	if err != nil {
		return nil, err
	}
	active := make([]string, 0, len(buttons))
	for _, b := range buttons {
		if b.Active {
			active = append(active, b.Code)
		}
	}
	return active, nil
}

// Buttons returns every currency of project with its stored state.
func (s *Selector) Buttons(ctx context.Context, project string) ([]Button, error) {
	p, err := lookup(project)
	if err != nil {
		return nil, err
	}
	buttons := make([]Button, 0, len(p.Currencies))
	for _, code := range p.Currencies {
		state, _, err := s.Store.Get(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("reading state of %s: %w", code, err)
		}
		buttons = append(buttons, Button{Code: code, Active: state == StateActive})
	}
	return buttons, nil
}

// Toggle flips one button and returns its new state.
func (s *Selector) Toggle(ctx context.Context, project, code string) (bool, error) {
	if err := s.check(project, code); err != nil {
		return false, err
	}
	state, _, err := s.Store.Get(ctx, code)
	if err != nil {
		return false, fmt.Errorf("reading state of %s: %w", code, err)
	}
	active := state != StateActive
	return active, s.write(ctx, code, active)
}

// Set forces one button into the given state.
func (s *Selector) Set(ctx context.Context, project, code string, active bool) error {
	if err := s.check(project, code); err != nil {
		return err
	}
	return s.write(ctx, code, active)
}

// Reset deactivates every button of project. Stores implementing Deleter
// drop the stored state instead of recording it as inactive.
func (s *Selector) Reset(ctx context.Context, project string) error {
	p, err := lookup(project)
	if err != nil {
		return err
	}
	del, canDelete := s.Store.(Deleter)
	for _, code := range p.Currencies {
		if !canDelete {
			if err := s.write(ctx, code, false); err != nil {
				return err
			}
			continue
		}
		if err := del.Delete(ctx, code); err != nil {
			return fmt.Errorf("clearing state of %s: %w", code, err)
		}
	}
	return nil
}

func (s *Selector) check(project, code string) error {
	p, err := lookup(project)
	if err != nil {
		return err
	}
	if !p.HasCurrency(code) {
		return failure.Newf(failure.UserInput, "currency", "%s is not a currency of %s", code, project)
	}
	return nil
}

func (s *Selector) write(ctx context.Context, code string, active bool) error {
	state := StateInactive
	if active {
		state = StateActive
	}
	if err := s.Store.Set(ctx, code, state); err != nil {
		return fmt.Errorf("saving state of %s: %w", code, err)
	}
	return nil
}

func lookup(project string) (projects.Project, error) {
	p, ok := projects.Lookup(project)
	if !ok {
		return projects.Project{}, failure.Newf(failure.UserInput, "project", "unknown project %q", project)
	}
	return p, nil
}
