package repository

import (
	"context"

	"gorm.io/gorm"

	"swachvillage/internal/model"
)

// VerificationRepository records and counts consumer product verifications.
type VerificationRepository interface {
	Create(ctx context.Context, verification *model.ProductVerification) error
	CountByBusiness(ctx context.Context, businessID uint) (int64, error)
}

type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository creates a new verification repository.
func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) Create(ctx context.Context, verification *model.ProductVerification) error {
	return r.db.WithContext(ctx).Create(verification).Error
}

func (r *verificationRepository) CountByBusiness(ctx context.Context, businessID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProductVerification{}).
		Joins("JOIN products ON products.id = product_verifications.product_id").
		Where("products.business_id = ?", businessID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
