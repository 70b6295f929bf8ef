// Package entity contains the core business objects of the project.
package entity

import "time"

// CartItem is a catalog item the user intends to purchase. Quantity is
// implicitly one; duplicate adds are rejected rather than incremented.
type CartItem struct {
	Item    CatalogItem
	AddedAt time.Time
}
