package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCart(t *testing.T) {
	t.Run("empty cart encodes items as an array", func(t *testing.T) {
		data, err := MarshalCart(NewCart())
		require.NoError(t, err)
		assert.JSONEq(t, `{"items":[],"total":0,"itemCount":0}`, string(data))
	})

	t.Run("nil items encode as an array", func(t *testing.T) {
		data, err := MarshalCart(&Cart{})
		require.NoError(t, err)
		assert.Equal(t, `{"items":[],"total":0,"itemCount":0}`, string(data))
	})

	t.Run("field names match the stored layout", func(t *testing.T) {
		c := NewCart()
		c.AddProduct(tee)
		data, err := MarshalCart(c)
		require.NoError(t, err)
		assert.Equal(t,
			`{"items":[{"id":"A","name":"Tee","price":50000,"quantity":1,"image":"/a.png","subtotal":50000}],"total":50000,"itemCount":1}`,
			string(data))
	})
}

func TestUnmarshalCart(t *testing.T) {
	t.Run("document written by the storefront", func(t *testing.T) {
		raw := `{"items":[{"id":"A","name":"Tee","price":50000,"quantity":2,"image":"/a.png","subtotal":100000}],"total":100000,"itemCount":2}`
		c, err := UnmarshalCart([]byte(raw))
		require.NoError(t, err)
		require.Len(t, c.Items, 1)
		assert.Equal(t, 2, c.Items[0].Quantity)
		assert.Equal(t, int64(100000), c.Total)
	})

	t.Run("missing items becomes empty slice", func(t *testing.T) {
		c, err := UnmarshalCart([]byte(`{"total":0}`))
		require.NoError(t, err)
		assert.NotNil(t, c.Items)
		assert.True(t, c.IsEmpty())
	})

	t.Run("corrupt document is an error", func(t *testing.T) {
		_, err := UnmarshalCart([]byte(`{"items":[`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse cart")
	})
}

func TestRoundTripIsStable(t *testing.T) {
	c := NewCart()
	c.AddProduct(mug)
	c.AddProduct(tee)
	c.AddProduct(mug)

	first, err := MarshalCart(c)
	require.NoError(t, err)
	loaded, err := UnmarshalCart(first)
	require.NoError(t, err)
	second, err := MarshalCart(loaded)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestMarshalCartIndent(t *testing.T) {
	data, err := MarshalCartIndent(NewCart())
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"items\": [],\n  \"total\": 0,\n  \"itemCount\": 0\n}\n", string(data))
}
