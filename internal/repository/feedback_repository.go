package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"swachvillage/internal/model"
)

// FeedbackWithAuthor is a feedback row joined with its author's display name.
type FeedbackWithAuthor struct {
	model.Feedback
	UserName string `json:"user_name"`
}

// BusinessFeedbackRow is one feedback row for a business, joined with product
// and consumer names.
type BusinessFeedbackRow struct {
	ProductID    uint       `json:"product_id"`
	ProductName  string     `json:"product_name"`
	FeedbackID   uint       `json:"feedback_id"`
	FeedbackText string     `json:"feedback_text"`
	Rating       int        `json:"rating"`
	Upvotes      int        `json:"upvotes"`
	Photos       string     `json:"photos"`
	CreatedAt    *time.Time `json:"created_at"`
	ConsumerName string     `json:"consumer_name"`
}

// BusinessFeedbackStats aggregates feedback over all of a business's products.
type BusinessFeedbackStats struct {
	TotalFeedback int64   `json:"total_feedback"`
	AverageRating float64 `json:"average_rating"`
	FiveStar      int64   `json:"five_star"`
	FourStar      int64   `json:"four_star"`
	ThreeStar     int64   `json:"three_star"`
	TwoStar       int64   `json:"two_star"`
	OneStar       int64   `json:"one_star"`
}

// ConsumerFeedbackRow is one of a consumer's submissions joined with the
// business it targets.
type ConsumerFeedbackRow struct {
	ID           uint       `json:"id"`
	Rating       int        `json:"rating"`
	Comment      string     `json:"comment"`
	CreatedAt    *time.Time `json:"created_at"`
	BusinessName string     `json:"business_name"`
	ProductName  string     `json:"product_name"`
}

// FeedbackRepository defines feedback persistence operations.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	Update(ctx context.Context, feedback *model.Feedback) error
	FindByID(ctx context.Context, id uint) (*model.Feedback, error)
	FindByProductAndConsumer(ctx context.Context, productID, consumerID uint) (*model.Feedback, error)
	IncrementUpvotes(ctx context.Context, id uint) error
	ListByProduct(ctx context.Context, productID uint) ([]FeedbackWithAuthor, error)
	ListByBusiness(ctx context.Context, businessID uint, limit int) ([]BusinessFeedbackRow, error)
	BusinessStats(ctx context.Context, businessID uint) (*BusinessFeedbackStats, error)
	ListByConsumer(ctx context.Context, consumerID uint) ([]ConsumerFeedbackRow, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) Update(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Save(feedback).Error
}

func (r *feedbackRepository) FindByID(ctx context.Context, id uint) (*model.Feedback, error) {
	var feedback model.Feedback
	if err := r.db.WithContext(ctx).First(&feedback, id).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) FindByProductAndConsumer(ctx context.Context, productID, consumerID uint) (*model.Feedback, error) {
	var feedback model.Feedback
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND consumer_id = ?", productID, consumerID).
		First(&feedback).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) IncrementUpvotes(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Feedback{}).
		Where("id = ?", id).
		UpdateColumn("upvotes", gorm.Expr("upvotes + 1")).Error
}

func (r *feedbackRepository) ListByProduct(ctx context.Context, productID uint) ([]FeedbackWithAuthor, error) {
	var rows []FeedbackWithAuthor
	err := r.db.WithContext(ctx).Model(&model.Feedback{}).
		Select("feedback.*, users.full_name AS user_name").
		Joins("JOIN users ON users.id = feedback.consumer_id").
		Where("feedback.product_id = ?", productID).
		Order("feedback.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *feedbackRepository) ListByBusiness(ctx context.Context, businessID uint, limit int) ([]BusinessFeedbackRow, error) {
	query := `
		SELECT p.id AS product_id,
		       p.product_name,
		       f.id AS feedback_id,
		       f.feedback_text,
		       f.rating,
		       f.upvotes,
		       IFNULL(f.photos, '') AS photos,
		       f.created_at,
		       u.full_name AS consumer_name
		FROM feedback f
		JOIN products p ON p.id = f.product_id
		JOIN users u ON u.id = f.consumer_id
		WHERE p.business_id = ?
		ORDER BY f.created_at DESC`
	args := []interface{}{businessID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var rows []BusinessFeedbackRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *feedbackRepository) BusinessStats(ctx context.Context, businessID uint) (*BusinessFeedbackStats, error) {
	var stats BusinessFeedbackStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS total_feedback,
		       IFNULL(AVG(f.rating), 0) AS average_rating,
		       SUM(CASE WHEN f.rating = 5 THEN 1 ELSE 0 END) AS five_star,
		       SUM(CASE WHEN f.rating = 4 THEN 1 ELSE 0 END) AS four_star,
		       SUM(CASE WHEN f.rating = 3 THEN 1 ELSE 0 END) AS three_star,
		       SUM(CASE WHEN f.rating = 2 THEN 1 ELSE 0 END) AS two_star,
		       SUM(CASE WHEN f.rating = 1 THEN 1 ELSE 0 END) AS one_star
		FROM feedback f
		JOIN products p ON f.product_id = p.id
		WHERE p.business_id = ?`, businessID).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *feedbackRepository) ListByConsumer(ctx context.Context, consumerID uint) ([]ConsumerFeedbackRow, error) {
	var rows []ConsumerFeedbackRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT f.id,
		       f.rating,
		       f.feedback_text AS comment,
		       f.created_at,
		       IFNULL(bc.business_name, '') AS business_name,
		       p.product_name
		FROM feedback f
		JOIN products p ON f.product_id = p.id
		LEFT JOIN business_certification bc ON bc.user_id = p.business_id
		WHERE f.consumer_id = ?
		ORDER BY f.created_at DESC`, consumerID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
