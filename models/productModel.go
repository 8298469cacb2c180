package models

import "gorm.io/gorm"

// Product rows are seeded once and read-only afterwards. Price changes
// never rewrite existing order lines because each OrderItem keeps its own
// price snapshot.
type Product struct {
	gorm.Model
	Name     string  `gorm:"size:100;not null" json:"name"`
	Price    float64 `gorm:"not null" json:"price"`
	ImageURL string  `gorm:"size:255;not null" json:"imageUrl"`
}
