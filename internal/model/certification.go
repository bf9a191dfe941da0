package model

import "time"

// CertificationStatus represents the review state of a certification application.
type CertificationStatus string

const (
	CertificationStatusPending  CertificationStatus = "pending"
	CertificationStatusApproved CertificationStatus = "approved"
	CertificationStatusRejected CertificationStatus = "rejected"
)

// BusinessCertification holds a business's certification application. One row
// per business user, created empty at registration and filled in step by step.
type BusinessCertification struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"uniqueIndex;not null"`

	// Business details
	BusinessName       string `json:"business_name" gorm:"size:255"`
	RegistrationNumber string `json:"registration_number" gorm:"size:100"`
	PanCard            string `json:"pan_card" gorm:"size:50"`
	AadhaarCard        string `json:"aadhaar_card" gorm:"size:50"`
	GSTNumber          string `json:"gst_number" gorm:"size:50"`

	// Owner details
	OwnerName        string `json:"owner_name" gorm:"size:255"`
	Citizenship      string `json:"citizenship" gorm:"size:100"`
	OwnerMobile      string `json:"owner_mobile" gorm:"size:32"`
	OwnerEmail       string `json:"owner_email" gorm:"size:255"`
	PanCardOwner     string `json:"pan_card_owner" gorm:"size:50"`
	AadhaarCardOwner string `json:"aadhaar_card_owner" gorm:"size:50"`

	// Vendor compliance
	VendorCount         int    `json:"vendor_count" gorm:"default:0"`
	VendorCertification string `json:"vendor_certification" gorm:"size:255"`

	// Cleanliness and hygiene
	CleanlinessRating   int    `json:"cleanliness_rating" gorm:"default:0"`
	Photos              string `json:"photos" gorm:"type:text"` // JSON array of upload URLs
	SanitationPractices bool   `json:"sanitation_practices" gorm:"default:false"`
	WasteManagement     bool   `json:"waste_management" gorm:"default:false"`

	// Cruelty-free and sustainability
	IsVegetarian   bool   `json:"is_vegetarian" gorm:"default:false"`
	IsVegan        bool   `json:"is_vegan" gorm:"default:false"`
	CrueltyFree    bool   `json:"cruelty_free" gorm:"default:false"`
	Sustainability string `json:"sustainability" gorm:"size:255"`

	Status        CertificationStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	AuditRequired bool                `json:"audit_required" gorm:"default:false"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// TableName overrides GORM's pluralization.
func (BusinessCertification) TableName() string { return "business_certification" }
