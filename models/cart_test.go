package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func price(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad price %q: %v", s, err)
	}
	return d
}

func TestAddItemMergesByName(t *testing.T) {
	var cart Cart

	if _, err := cart.AddItem("Arroz", price(t, "5.00"), 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	items, err := cart.AddItem("Arroz", price(t, "5.25"), 3)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("want one merged line, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", items[0].Quantity)
	}
	// price is last-write-wins
	if !items[0].UnitPrice.Equal(price(t, "5.25")) {
		t.Errorf("unit price = %s, want 5.25", items[0].UnitPrice)
	}
}

func TestAddItemDistinctNamesKeepOrder(t *testing.T) {
	var cart Cart
	cart.AddItem("Arroz", price(t, "5.00"), 1)
	cart.AddItem("Feijão", price(t, "3.50"), 1)
	cart.AddItem("Café", price(t, "12.90"), 1)

	items := cart.Items()
	want := []string{"Arroz", "Feijão", "Café"}
	for i, name := range want {
		if items[i].Name != name {
			t.Errorf("items[%d].Name = %q, want %q", i, items[i].Name, name)
		}
	}
}

func TestAddItemInvalidQuantity(t *testing.T) {
	for _, quantity := range []int{0, -1, -10} {
		var cart Cart
		if _, err := cart.AddItem("Arroz", price(t, "5.00"), quantity); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("quantity %d: err = %v, want ErrInvalidQuantity", quantity, err)
		}
		if cart.Len() != 0 {
			t.Errorf("quantity %d: cart mutated on rejected add", quantity)
		}
	}
}

func TestTotal(t *testing.T) {
	var cart Cart
	if !cart.Total().IsZero() {
		t.Errorf("empty cart total = %s, want 0", cart.Total())
	}

	cart.AddItem("Arroz", price(t, "5.00"), 2)
	cart.AddItem("Feijão", price(t, "3.50"), 1)
	if got := cart.Total(); !got.Equal(price(t, "13.50")) {
		t.Errorf("total = %s, want 13.50", got)
	}
}

func TestTotalNoFloatDrift(t *testing.T) {
	// ten additions of 0.10 must land on exactly 1.00
	var cart Cart
	for i := 0; i < 10; i++ {
		cart.AddItem("Bala", price(t, "0.10"), 1)
	}
	if got := cart.Total(); !got.Equal(price(t, "1.00")) {
		t.Errorf("total = %s, want exactly 1.00", got)
	}
}

func TestRemoveItem(t *testing.T) {
	var cart Cart
	cart.AddItem("Arroz", price(t, "5.00"), 1)
	cart.AddItem("Feijão", price(t, "3.50"), 1)
	cart.AddItem("Café", price(t, "12.90"), 1)

	cart.RemoveItem(1)

	items := cart.Items()
	if len(items) != 2 || items[0].Name != "Arroz" || items[1].Name != "Café" {
		t.Fatalf("after remove: %+v", items)
	}
}

func TestRemoveItemOutOfRangeIsNoop(t *testing.T) {
	var cart Cart
	cart.AddItem("Arroz", price(t, "5.00"), 1)

	cart.RemoveItem(-1)
	cart.RemoveItem(1)
	cart.RemoveItem(99)

	if cart.Len() != 1 {
		t.Fatalf("cart changed by out-of-range removal, len = %d", cart.Len())
	}
}

func TestClear(t *testing.T) {
	var cart Cart
	cart.AddItem("Arroz", price(t, "5.00"), 2)
	cart.Clear()
	if cart.Len() != 0 || !cart.Total().IsZero() {
		t.Fatalf("cart not empty after Clear")
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	var cart Cart
	cart.AddItem("Arroz", price(t, "5.00"), 1)

	items := cart.Items()
	items[0].Quantity = 99

	if cart.Items()[0].Quantity != 1 {
		t.Fatal("snapshot mutation leaked into the cart")
	}
}
