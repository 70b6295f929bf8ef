// Package entity contains the core business objects of the project.
package entity

// CatalogItem is a purchasable tool listed by the marketplace backend.
// Items are fetched in bulk and immutable for the duration of a session.
type CatalogItem struct {
	ID         int64   // Stable backend-assigned identifier.
	Name       string  // Display name, unique within one directory snapshot.
	Price      float64 // Monthly price in the store currency.
	Category   string  // Filter tag, e.g. "productivity".
	ComingSoon bool    // Listed but not yet purchasable.
	LaunchURL  string  // External URL where a purchased tool is opened.
}

// Directory is the name-to-identifier mapping for purchasable items,
// built from one catalog snapshot.
type Directory struct {
	items  []CatalogItem
	byName map[string]int64
	byID   map[int64]CatalogItem
}

// NewDirectory builds a directory from a catalog snapshot.
func NewDirectory(items []CatalogItem) *Directory {
	dir := &Directory{
		items:  items,
		byName: make(map[string]int64, len(items)),
		byID:   make(map[int64]CatalogItem, len(items)),
	}
	for _, item := range items {
		dir.byName[item.Name] = item.ID
		dir.byID[item.ID] = item
	}

	return dir
}

// Items returns the catalog snapshot this directory was built from.
func (d *Directory) Items() []CatalogItem {
	return d.items
}

// IDByName resolves a display name to its backend identifier.
func (d *Directory) IDByName(name string) (int64, bool) {
	id, ok := d.byName[name]

	return id, ok
}

// ItemByID looks up a catalog item by its backend identifier.
func (d *Directory) ItemByID(id int64) (CatalogItem, bool) {
	item, ok := d.byID[id]

	return item, ok
}
