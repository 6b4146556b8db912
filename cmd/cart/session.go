package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/blububb/cart/internal/cli"
	"github.com/blububb/cart/internal/events"
	"github.com/blububb/cart/internal/model"
	"github.com/blububb/cart/internal/ops"
	"github.com/blububb/cart/internal/storage"
	"github.com/blububb/cart/internal/view"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session is one command's view of the cart: the store plus the badge,
// drawer and toast bound to it.
type session struct {
	storage   *storage.Storage
	config    *storage.Config
	logger    *zap.Logger
	kv        storage.KV
	store     *ops.Store
	popup     *ops.Popup
	badge     *view.Badge
	drawer    *view.Drawer
	notifier  *view.Notifier
	formatter *model.PriceFormatter

	closers []func() error
}

// commandContext returns the command's context, tolerating a nil command
// as the tests pass.
func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}

func newLogger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// formatterFor builds the price formatter described by cfg.
func formatterFor(cfg *storage.Config) (*model.PriceFormatter, error) {
	f, err := model.NewPriceFormatter(cfg.Locale, cfg.CurrencyPrefix)
	if err != nil {
		return nil, &cli.ValidationError{Field: "locale", Message: err.Error()}
	}
	return f, nil
}

// openSession opens the workspace in the current directory, connects the
// configured backend and wires the presentation subscribers to the store.
func openSession(ctx context.Context) (*session, error) {
	s, err := storage.Open(".")
	if err != nil {
		return nil, err
	}
	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}
	formatter, err := formatterFor(cfg)
	if err != nil {
		return nil, err
	}

	logger := newLogger()
	sess := &session{storage: s, config: cfg, logger: logger, formatter: formatter}

	kv, closeKV, err := storage.OpenBackend(ctx, s, cfg, logger)
	if err != nil {
		return nil, &cli.BackendError{Backend: cfg.Backend, Err: err, Hint: backendHint(cfg.Backend)}
	}
	sess.kv = kv
	sess.closers = append(sess.closers, closeKV)

	sess.store = ops.NewStore(kv, ops.WithLogger(logger))
	sess.popup = ops.NewPopup(kv, logger)

	initial := sess.store.Load(ctx)
	sess.badge = view.NewBadge(initial)
	sess.drawer = view.NewDrawer(initial, formatter)
	sess.store.Subscribe(sess.badge)
	sess.store.Subscribe(sess.drawer)

	if cfg.NATSURL != "" {
		nc, err := events.Connect(cfg.NATSURL)
		if err != nil {
			// Notifications are best effort; the cart still works without them.
			logger.Warn("change notifications disabled", zap.Error(err))
		} else {
			sess.store.Subscribe(events.NewChangePublisher(nc, cfg.NATSSubject, logger))
			sess.closers = append(sess.closers, func() error {
				return nc.Drain()
			})
		}
	}

	// A CLI process exits right after the command, so the toast plays its
	// whole lifecycle at once and is printed when it becomes visible.
	sess.notifier = view.NewNotifier(
		view.WithClock(view.ImmediateClock{}),
		view.WithTimings(cfg.ToastEnter(), cfg.ToastDisplay(), cfg.ToastFade()),
		view.WithOnChange(func(t *view.Toast) {
			if t.State() == view.ToastVisible {
				fmt.Println(cli.Yellow(t.Message))
			}
		}),
	)
	sess.store.OnAdded(sess.notifier.ProductAdded)

	return sess, nil
}

// Close releases backend and NATS connections.
func (s *session) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.logger.Sync()
	return errors.Join(errs...)
}

// requireItem returns a NotFoundError unless the cart holds productID.
func (s *session) requireItem(ctx context.Context, productID string) error {
	if s.store.Load(ctx).Find(productID) == nil {
		return &cli.NotFoundError{ID: productID}
	}
	return nil
}

// printBadge prints the badge line shown after every change.
func (s *session) printBadge() {
	if s.badge.Visible() {
		fmt.Println(cli.Green(s.badge.String()))
		return
	}
	fmt.Println(cli.Gray("[cart empty]"))
}

func backendHint(backend string) string {
	switch backend {
	case storage.BackendRedis:
		return "check redis_addr and redis_password in .cartconfig.yaml"
	case storage.BackendPostgres:
		return "check postgres_dsn in .cartconfig.yaml"
	default:
		return "set backend to file, memory, redis or postgres in .cartconfig.yaml"
	}
}
