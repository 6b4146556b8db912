package view

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/blububb/cart/internal/model"
	"github.com/google/uuid"
)

// Toast timing defaults: a short delay before the entrance transition, a
// display period counted from creation, and the exit fade.
const (
	DefaultToastEnter   = 10 * time.Millisecond
	DefaultToastDisplay = 2500 * time.Millisecond
	DefaultToastFade    = 300 * time.Millisecond
)

// ToastState is the lifecycle stage of a toast.
type ToastState int

const (
	ToastCreated ToastState = iota
	ToastVisible
	ToastHiding
	ToastRemoved
)

func (s ToastState) String() string {
	switch s {
	case ToastCreated:
		return "created"
	case ToastVisible:
		return "visible"
	case ToastHiding:
		return "hiding"
	case ToastRemoved:
		return "removed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Clock schedules callbacks. time.AfterFunc satisfies it through RealClock.
type Clock interface {
	AfterFunc(d time.Duration, f func())
}

// RealClock runs callbacks on the runtime timer.
type RealClock struct{}

// AfterFunc calls f in its own goroutine after d.
func (RealClock) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// ImmediateClock runs every callback synchronously, ignoring the delay.
// Short-lived processes use it to play a toast's whole lifecycle at once.
type ImmediateClock struct{}

// AfterFunc calls f now.
func (ImmediateClock) AfterFunc(_ time.Duration, f func()) {
	f()
}

// Toast is one transient confirmation message.
type Toast struct {
	ID      string
	Message string

	mu    sync.Mutex
	state ToastState
}

// State returns the current lifecycle stage.
func (t *Toast) State() ToastState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// advance moves the toast forward to s. Backward moves are ignored.
func (t *Toast) advance(s ToastState) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s <= t.state {
		return false
	}
	t.state = s
	return true
}

// Notifier creates toasts and drives each through its timers. Toasts are
// independent; none is ever cancelled.
type Notifier struct {
	clock   Clock
	enter   time.Duration
	display time.Duration
	fade    time.Duration

	onChange func(t *Toast)

	mu     sync.Mutex
	active map[string]*Toast
}

// NotifierOption configures a Notifier.
type NotifierOption func(*Notifier)

// WithClock replaces the real clock.
func WithClock(c Clock) NotifierOption {
	return func(n *Notifier) { n.clock = c }
}

// WithTimings overrides the enter delay, display time and fade length.
func WithTimings(enter, display, fade time.Duration) NotifierOption {
	return func(n *Notifier) {
		n.enter, n.display, n.fade = enter, display, fade
	}
}

// WithOnChange registers a callback invoked on every state change,
// including creation.
func WithOnChange(fn func(t *Toast)) NotifierOption {
	return func(n *Notifier) { n.onChange = fn }
}

// NewNotifier returns a Notifier with the default timings.
func NewNotifier(opts ...NotifierOption) *Notifier {
	n := &Notifier{
		clock:   RealClock{},
		enter:   DefaultToastEnter,
		display: DefaultToastDisplay,
		fade:    DefaultToastFade,
		active:  make(map[string]*Toast),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// AddedMessage is the confirmation text for a product added to the cart.
func AddedMessage(name string) string {
	return name + " ditambahkan ke keranjang!"
}

// ProductAdded shows the confirmation for p. It matches ops.AddedFunc.
func (n *Notifier) ProductAdded(_ context.Context, p model.Product) {
	n.Show(AddedMessage(p.Name))
}

// Show creates a toast and schedules its lifecycle.
func (n *Notifier) Show(message string) *Toast {
	t := &Toast{ID: uuid.NewString(), Message: message}

	n.mu.Lock()
	n.active[t.ID] = t
	n.mu.Unlock()
	n.emit(t)

	n.clock.AfterFunc(n.enter, func() {
		n.transition(t, ToastVisible)
	})
	n.clock.AfterFunc(n.display, func() {
		n.transition(t, ToastHiding)
		n.clock.AfterFunc(n.fade, func() {
			n.transition(t, ToastRemoved)
		})
	})
	return t
}

// Active returns the toasts that have not been removed yet.
func (n *Notifier) Active() []*Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]*Toast, 0, len(n.active))
	for _, t := range n.active {
		out = append(out, t)
	}
	return out
}

func (n *Notifier) transition(t *Toast, s ToastState) {
	if !t.advance(s) {
		return
	}
	if s == ToastRemoved {
		n.mu.Lock()
		delete(n.active, t.ID)
		n.mu.Unlock()
	}
	n.emit(t)
}

func (n *Notifier) emit(t *Toast) {
	if n.onChange != nil {
		n.onChange(t)
	}
}
