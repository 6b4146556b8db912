package view

import (
	"context"
	"fmt"

	"github.com/blububb/cart/internal/model"
	"github.com/blububb/cart/internal/ops"
)

// ActionKind identifies a per-line control in the drawer.
type ActionKind int

const (
	ActionIncrement ActionKind = iota + 1
	ActionDecrement
	ActionRemove
)

var actionNames = map[ActionKind]string{
	ActionIncrement: "increment",
	ActionDecrement: "decrement",
	ActionRemove:    "remove",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(k))
}

// ActionNames returns the names of all action kinds in declaration order.
func ActionNames() []string {
	return []string{
		ActionIncrement.String(),
		ActionDecrement.String(),
		ActionRemove.String(),
	}
}

// ParseActionKind resolves an exact action name.
func ParseActionKind(name string) (ActionKind, error) {
	for k, n := range actionNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Action is a click on one drawer control for one product.
type Action struct {
	Kind      ActionKind
	ProductID string
}

// ActionHandler performs an action on the cart.
type ActionHandler func(ctx context.Context, productID string) (*model.Cart, error)

// Dispatcher routes actions to cart operations through a fixed table.
type Dispatcher struct {
	handlers map[ActionKind]ActionHandler
}

// NewDispatcher wires each action kind to its Store operation.
func NewDispatcher(s *ops.Store) *Dispatcher {
	return &Dispatcher{
		handlers: map[ActionKind]ActionHandler{
			ActionIncrement: s.Increment,
			ActionDecrement: s.Decrement,
			ActionRemove:    s.Remove,
		},
	}
}

// Dispatch runs the handler for a.Kind.
func (d *Dispatcher) Dispatch(ctx context.Context, a Action) (*model.Cart, error) {
	h, ok := d.handlers[a.Kind]
	if !ok {
		return nil, fmt.Errorf("no handler for %s", a.Kind)
	}
	return h(ctx, a.ProductID)
}
