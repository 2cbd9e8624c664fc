package db

import "gorm.io/gorm"

// OrderByID orders results by primary key, the default listing order.
func OrderByID() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}
}
