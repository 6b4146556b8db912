// Package events announces cart changes on a NATS subject so other
// processes sharing the same storage can refresh their views.
// Delivery is best effort and carries no merge semantics.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/blububb/cart/internal/model"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const (
	connectTimeout = 2 * time.Second
	clientName     = "blububb-cart"
)

// Publisher is the subset of *nats.Conn used here.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Connect dials the NATS server at url.
func Connect(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name(clientName),
		nats.Timeout(connectTimeout),
		nats.MaxReconnects(0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats at %s: %w", url, err)
	}
	return nc, nil
}

// ChangePublisher publishes the saved cart document after every change.
// It is an ops.Subscriber.
type ChangePublisher struct {
	pub     Publisher
	subject string
	logger  *zap.Logger
}

// NewChangePublisher returns a subscriber publishing to subject.
func NewChangePublisher(pub Publisher, subject string, logger *zap.Logger) *ChangePublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChangePublisher{pub: pub, subject: subject, logger: logger}
}

// CartChanged publishes cart. Failures are logged, never returned: a missed
// notification must not fail the save that already happened.
func (p *ChangePublisher) CartChanged(_ context.Context, cart *model.Cart) {
	data, err := model.MarshalCart(cart)
	if err != nil {
		p.logger.Warn("failed to encode cart change", zap.Error(err))
		return
	}
	if err := p.pub.Publish(p.subject, data); err != nil {
		p.logger.Warn("failed to publish cart change",
			zap.String("subject", p.subject),
			zap.Error(err))
		return
	}
	p.logger.Debug("cart change published",
		zap.String("subject", p.subject),
		zap.Int("item_count", cart.ItemCount))
}
