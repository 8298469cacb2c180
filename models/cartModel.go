package models

import "strconv"

// Cart is the per-visitor shopping cart: product id (stringified) mapped
// to desired quantity. It lives in the visitor's session, never in the
// database, and is lost when the session ends.
type Cart map[string]int

// Add increments the quantity for a product, creating the entry if
// absent. Quantities of zero or less are rejected and leave the cart
// unchanged.
func (c Cart) Add(productID string, quantity int) bool {
	if quantity <= 0 {
		return false
	}
	c[productID] += quantity
	return true
}

// Set overwrites the quantity for a product. Setting zero or less removes
// the entry entirely.
func (c Cart) Set(productID string, quantity int) {
	if quantity <= 0 {
		delete(c, productID)
		return
	}
	c[productID] = quantity
}

// Remove drops the entry if present, no-op otherwise.
func (c Cart) Remove(productID string) {
	delete(c, productID)
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// CartFromSession rebuilds a Cart from a session value. Session payloads
// round-trip through JSON, so numbers come back as float64.
func CartFromSession(value any) Cart {
	cart := Cart{}
	raw, ok := value.(map[string]any)
	if !ok {
		if typed, ok := value.(Cart); ok {
			return typed
		}
		return cart
	}
	for id, qty := range raw {
		switch n := qty.(type) {
		case float64:
			cart[id] = int(n)
		case int:
			cart[id] = n
		case string:
			if parsed, err := strconv.Atoi(n); err == nil {
				cart[id] = parsed
			}
		}
	}
	return cart
}
