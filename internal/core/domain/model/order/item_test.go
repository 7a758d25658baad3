package order_test

import (
	"testing"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustItem(t *testing.T, productID int, name string, quantity int, price string) order.Item {
	t.Helper()
	item, err := order.NewItem(productID, name, quantity, mustMoney(t, price))
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	validPrice := func(t *testing.T) kernel.Money { return mustMoney(t, "49999.99") }

	t.Run("should create valid item", func(t *testing.T) {
		item, err := order.NewItem(101, "Laptop", 2, validPrice(t))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, 101, item.ProductID())
		assert.Equal(t, "Laptop", item.ProductName())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, "49999.99", item.UnitPrice().String())
	})

	t.Run("should fail with non-positive product id", func(t *testing.T) {
		_, err := order.NewItem(0, "Laptop", 2, validPrice(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "productId")
	})

	t.Run("should fail with empty product name", func(t *testing.T) {
		_, err := order.NewItem(101, "", 2, validPrice(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "productName")
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		_, err := order.NewItem(101, "Laptop", 0, validPrice(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := order.NewItem(101, "Laptop", -3, validPrice(t))

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed price", func(t *testing.T) {
		var price kernel.Money

		_, err := order.NewItem(101, "Laptop", 2, price)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("should fail for zero value item", func(t *testing.T) {
		var item order.Item

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})
}

func TestMergeItems(t *testing.T) {
	t.Run("should append new product", func(t *testing.T) {
		items := []order.Item{mustItem(t, 1, "Laptop", 2, "500.00")}
		incoming := mustItem(t, 2, "Mouse", 1, "25.00")

		merged := order.MergeItems(items, incoming)

		require.Len(t, merged, 2)
		assert.Equal(t, 1, merged[0].ProductID())
		assert.Equal(t, 2, merged[1].ProductID())
	})

	t.Run("should merge quantities for same product id", func(t *testing.T) {
		items := []order.Item{mustItem(t, 1, "Laptop", 2, "500.00")}
		incoming := mustItem(t, 1, "Laptop", 3, "500.00")

		merged := order.MergeItems(items, incoming)

		require.Len(t, merged, 1)
		assert.Equal(t, 1, merged[0].ProductID())
		assert.Equal(t, 5, merged[0].Quantity())
	})

	t.Run("should keep existing unit price on merge", func(t *testing.T) {
		items := []order.Item{mustItem(t, 1, "Laptop", 1, "500.00")}
		incoming := mustItem(t, 1, "Laptop", 1, "450.00")

		merged := order.MergeItems(items, incoming)

		require.Len(t, merged, 1)
		assert.Equal(t, "500.00", merged[0].UnitPrice().String())
	})

	t.Run("should preserve item order", func(t *testing.T) {
		items := []order.Item{
			mustItem(t, 1, "Laptop", 1, "500.00"),
			mustItem(t, 2, "Mouse", 1, "25.00"),
			mustItem(t, 3, "Keyboard", 1, "75.00"),
		}
		incoming := mustItem(t, 2, "Mouse", 4, "25.00")

		merged := order.MergeItems(items, incoming)

		require.Len(t, merged, 3)
		assert.Equal(t, []int{1, 2, 3}, []int{
			merged[0].ProductID(), merged[1].ProductID(), merged[2].ProductID(),
		})
		assert.Equal(t, 5, merged[1].Quantity())
	})

	t.Run("should not mutate the input slice", func(t *testing.T) {
		items := []order.Item{mustItem(t, 1, "Laptop", 2, "500.00")}
		incoming := mustItem(t, 1, "Laptop", 3, "500.00")

		_ = order.MergeItems(items, incoming)

		assert.Equal(t, 2, items[0].Quantity())
	})
}
