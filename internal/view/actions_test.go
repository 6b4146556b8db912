package view

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher(t *testing.T) {
	ctx := context.Background()
	s, badge, _ := setupBoundStore(t)
	d := NewDispatcher(s)

	_, err := s.Add(ctx, tee)
	require.NoError(t, err)

	c, err := d.Dispatch(ctx, Action{Kind: ActionIncrement, ProductID: "A"})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 2, badge.Count())

	c, err = d.Dispatch(ctx, Action{Kind: ActionDecrement, ProductID: "A"})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Items[0].Quantity)

	c, err = d.Dispatch(ctx, Action{Kind: ActionDecrement, ProductID: "A"})
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	assert.False(t, badge.Visible())

	_, _ = s.Add(ctx, mug)
	c, err = d.Dispatch(ctx, Action{Kind: ActionRemove, ProductID: "B"})
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())

	_, err = d.Dispatch(ctx, Action{Kind: ActionKind(42), ProductID: "B"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "action(42)")
}

func TestParseActionKind(t *testing.T) {
	for _, name := range ActionNames() {
		k, err := ParseActionKind(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.String())
	}

	_, err := ParseActionKind("explode")
	assert.Error(t, err)
	assert.Equal(t, []string{"increment", "decrement", "remove"}, ActionNames())
}
