package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func item(id string, price float64) CartItem {
	return CartItem{ProductID: id, Name: "Item " + id, Price: price}
}

func TestAddItemMergesByProduct(t *testing.T) {
	var c Cart

	c.AddItem(item("p1", 100))
	c.AddItem(item("p1", 100))

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 2, c.TotalItems)
	assert.Equal(t, 200.0, c.TotalPrice)
}

func TestAddItemIgnoresCallerQuantity(t *testing.T) {
	var c Cart

	in := item("p1", 50)
	in.Quantity = 99 // adding is always +1
	c.AddItem(in)

	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.Equal(t, 50.0, c.TotalPrice)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	var c Cart
	c.AddItem(item("p1", 100))
	c.AddItem(item("p2", 30))

	c.SetQuantity("p1", 0)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, "p2", c.Items[0].ProductID)
	assert.Equal(t, 30.0, c.TotalPrice)
}

func TestSetQuantityRecomputesTotals(t *testing.T) {
	var c Cart
	c.AddItem(item("p1", 100))

	c.SetQuantity("p1", 5)

	assert.Equal(t, 5, c.TotalItems)
	assert.Equal(t, 500.0, c.TotalPrice)
}

func TestRemoveMissingItemIsNoop(t *testing.T) {
	var c Cart
	c.AddItem(item("p1", 100))

	c.RemoveItem("nope")

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 100.0, c.TotalPrice)
}

func TestClearKeepsCartShape(t *testing.T) {
	var c Cart
	c.AddItem(item("p1", 100))

	c.Clear()

	assert.NotNil(t, c.Items)
	assert.Empty(t, c.Items)
	assert.Zero(t, c.TotalItems)
	assert.Zero(t, c.TotalPrice)
}

func TestRecomputeNeverTrustsStoredTotals(t *testing.T) {
	c := Cart{
		Items:      []CartItem{{ProductID: "p1", Price: 10, Quantity: 3}},
		TotalItems: 42,
		TotalPrice: 9999,
	}

	c.Recompute()

	assert.Equal(t, 3, c.TotalItems)
	assert.Equal(t, 30.0, c.TotalPrice)
}
