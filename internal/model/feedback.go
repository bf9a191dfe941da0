package model

import "time"

// Feedback is a consumer's rating and comment on a product. A consumer has at
// most one feedback row per product; resubmitting updates it in place.
type Feedback struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ProductID    uint      `json:"product_id" gorm:"not null;index;uniqueIndex:idx_feedback_product_consumer"`
	ConsumerID   uint      `json:"consumer_id" gorm:"not null;index;uniqueIndex:idx_feedback_product_consumer"`
	FeedbackText string    `json:"feedback_text" gorm:"type:text"`
	Rating       int       `json:"rating" gorm:"not null"`
	Photos       string    `json:"photos" gorm:"type:text"` // JSON array of upload URLs
	Upvotes      int       `json:"upvotes" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Product  Product `json:"-" gorm:"foreignKey:ProductID"`
	Consumer User    `json:"-" gorm:"foreignKey:ConsumerID"`
}

// TableName overrides GORM's pluralization ("feedback" is uncountable).
func (Feedback) TableName() string { return "feedback" }
