package repository

import (
	"context"

	"gorm.io/gorm"

	"swachvillage/internal/model"
)

// BusinessListing is a row in the public business directory.
type BusinessListing struct {
	ID                  uint    `json:"id"`
	BusinessName        string  `json:"business_name"`
	Description         string  `json:"description"`
	CertificationStatus string  `json:"certification_status"`
	Rating              float64 `json:"rating"`
}

// CertificationRepository defines certification persistence operations.
type CertificationRepository interface {
	Create(ctx context.Context, cert *model.BusinessCertification) error
	Update(ctx context.Context, cert *model.BusinessCertification) error
	FindByUserID(ctx context.Context, userID uint) (*model.BusinessCertification, error)
	ListDirectory(ctx context.Context, limit, offset int) ([]BusinessListing, error)
	CountDirectory(ctx context.Context) (int64, error)
}

type certificationRepository struct {
	db *gorm.DB
}

// NewCertificationRepository creates a new certification repository.
func NewCertificationRepository(db *gorm.DB) CertificationRepository {
	return &certificationRepository{db: db}
}

func (r *certificationRepository) Create(ctx context.Context, cert *model.BusinessCertification) error {
	return r.db.WithContext(ctx).Create(cert).Error
}

func (r *certificationRepository) Update(ctx context.Context, cert *model.BusinessCertification) error {
	return r.db.WithContext(ctx).Save(cert).Error
}

func (r *certificationRepository) FindByUserID(ctx context.Context, userID uint) (*model.BusinessCertification, error) {
	var cert model.BusinessCertification
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cert).Error; err != nil {
		return nil, err
	}
	return &cert, nil
}

// ListDirectory returns businesses ordered by name with their average product
// rating over all feedback.
func (r *certificationRepository) ListDirectory(ctx context.Context, limit, offset int) ([]BusinessListing, error) {
	var listings []BusinessListing
	err := r.db.WithContext(ctx).Raw(`
		SELECT bc.user_id AS id,
		       bc.business_name,
		       bc.sustainability AS description,
		       bc.status AS certification_status,
		       IFNULL((SELECT AVG(f.rating)
		               FROM feedback f
		               JOIN products p ON f.product_id = p.id
		               WHERE p.business_id = bc.user_id), 0) AS rating
		FROM business_certification bc
		ORDER BY bc.business_name
		LIMIT ? OFFSET ?`, limit, offset).Scan(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *certificationRepository) CountDirectory(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.BusinessCertification{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
