package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumLines(c Cart) int64 {
	var sum int64
	for _, item := range c.Items {
		sum += item.Price * item.Quantity
	}
	return sum
}

func TestCart_AddItem(t *testing.T) {
	cart := Cart{UserID: 1}
	bookA := Book{ID: 10, Price: 100_000}
	bookB := Book{ID: 20, Price: 50_000}

	require.NoError(t, cart.AddItem(bookA, 1))
	require.NoError(t, cart.AddItem(bookB, 2))
	assert.Equal(t, int64(200_000), cart.TotalAmount)

	// повторное добавление суммирует количество и сохраняет цену на момент первого добавления.
	bookA.Price = 120_000
	require.NoError(t, cart.AddItem(bookA, 2))
	require.Len(t, cart.Items, 2)
	assert.Equal(t, int64(3), cart.Items[0].Quantity)
	assert.Equal(t, int64(100_000), cart.Items[0].Price)
	assert.Equal(t, sumLines(cart), cart.TotalAmount)

	require.ErrorIs(t, cart.AddItem(bookB, 0), ErrInvalidQuantity)
	assert.Equal(t, sumLines(cart), cart.TotalAmount)
}

func TestCart_UpdateQuantity(t *testing.T) {
	cart := Cart{Items: []CartItem{{BookID: 1, Quantity: 1, Price: 10_000}}}
	cart.RecomputeTotal()

	cases := []struct {
		name     string
		bookID   int64
		quantity int64
		wantErr  error
	}{
		{name: "ok", bookID: 1, quantity: 4},
		{name: "zero quantity", bookID: 1, quantity: 0, wantErr: ErrInvalidQuantity},
		{name: "negative quantity", bookID: 1, quantity: -2, wantErr: ErrInvalidQuantity},
		{name: "missing item", bookID: 2, quantity: 1, wantErr: ErrItemNotFound},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := cart.UpdateQuantity(c.bookID, c.quantity)
			if c.wantErr != nil {
				require.ErrorIs(t, err, c.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.quantity, cart.Items[0].Quantity)
		})
	}
	assert.Equal(t, int64(40_000), cart.TotalAmount)
}

func TestCart_RemoveItem(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{BookID: 1, Quantity: 1, Price: 10_000},
		{BookID: 2, Quantity: 2, Price: 5_000},
	}}
	cart.RemoveItem(1)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(10_000), cart.TotalAmount)

	// отсутствующая книга - не ошибка.
	cart.RemoveItem(42)
	assert.Len(t, cart.Items, 1)

	cart.RemoveItem(2)
	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.TotalAmount)
}
