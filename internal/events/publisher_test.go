package events

import (
	"context"
	"errors"
	"testing"

	"github.com/blububb/cart/internal/model"
	"github.com/blububb/cart/internal/ops"
	"github.com/blububb/cart/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type message struct {
	subject string
	data    string
}

type fakePublisher struct {
	messages []message
	err      error
}

func (f *fakePublisher) Publish(subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, message{subject, string(data)})
	return nil
}

func TestChangePublisher(t *testing.T) {
	ctx := context.Background()
	pub := &fakePublisher{}
	s := ops.NewStore(storage.NewMemoryKV())
	s.Subscribe(NewChangePublisher(pub, "blububb.cart.changed", nil))

	_, err := s.Add(ctx, model.Product{ID: "A", Name: "Tee", Price: 50000, Image: "/a.png"})
	require.NoError(t, err)
	_, err = s.Clear(ctx)
	require.NoError(t, err)

	require.Len(t, pub.messages, 2)
	assert.Equal(t, "blububb.cart.changed", pub.messages[0].subject)
	assert.JSONEq(t,
		`{"items":[{"id":"A","name":"Tee","price":50000,"quantity":1,"image":"/a.png","subtotal":50000}],"total":50000,"itemCount":1}`,
		pub.messages[0].data)
	assert.Equal(t, `{"items":[],"total":0,"itemCount":0}`, pub.messages[1].data)
}

func TestChangePublisherFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	pub := &fakePublisher{err: errors.New("nats: connection closed")}
	s := ops.NewStore(storage.NewMemoryKV())
	s.Subscribe(NewChangePublisher(pub, "cart", zap.New(core)))

	c, err := s.Add(context.Background(), model.Product{ID: "A", Name: "Tee", Price: 1})
	require.NoError(t, err, "the save itself must succeed")
	assert.Equal(t, 1, c.ItemCount)

	entries := logs.FilterMessage("failed to publish cart change").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "cart", entries[0].ContextMap()["subject"])
}

func TestConnectFailure(t *testing.T) {
	_, err := Connect("nats://127.0.0.1:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to nats")
}
