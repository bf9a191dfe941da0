package model

import "time"

// Verification methods recorded when a consumer checks a product.
const (
	VerificationMethodBarcode = "barcode_scan"
	VerificationMethodManual  = "manual_code"
)

// ProductVerification records a single consumer scan or manual lookup of a
// product. Dashboard scan counts are derived from these rows.
type ProductVerification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Method    string    `json:"verification_method" gorm:"size:20;not null"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Product Product `json:"-" gorm:"foreignKey:ProductID"`
	User    User    `json:"-" gorm:"foreignKey:UserID"`
}
