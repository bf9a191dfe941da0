package model

import "time"

// Product represents a product listed by a business, identified by its
// scannable product code.
type Product struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	BusinessID          uint      `json:"business_id" gorm:"not null;index"`
	ProductName         string    `json:"product_name" gorm:"size:255;not null"`
	ProductCode         string    `json:"product_code" gorm:"uniqueIndex;size:100;not null"`
	Category            string    `json:"category" gorm:"size:100"`
	Description         string    `json:"description" gorm:"type:text"`
	CertificationStatus string    `json:"certification_status" gorm:"size:20;default:'pending'"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	// Relations
	Business User `json:"-" gorm:"foreignKey:BusinessID"`
}
