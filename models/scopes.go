package models

import "gorm.io/gorm"

// Active restricts a query to records that have not been soft deleted.
// Every read in the core composes this scope instead of relying on
// per-model hooks.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("deleted = ?", false)
}
