package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "swachvillage/internal/errors"
	"swachvillage/internal/model"
	"swachvillage/internal/repository"
)

// FeedbackView is one feedback entry as shown to consumers.
type FeedbackView struct {
	ID           uint     `json:"id"`
	UserName     string   `json:"user_name"`
	FeedbackText string   `json:"feedback_text"`
	Rating       int      `json:"rating"`
	Upvotes      int      `json:"upvotes"`
	CreatedAt    string   `json:"created_at"`
	Photos       []string `json:"photos"`
}

// FeedbackService handles consumer ratings and comments on products.
type FeedbackService interface {
	Submit(ctx context.Context, consumerID uint, productCode, text string, rating int, photos string) (feedbackID uint, updated bool, err error)
	Upvote(ctx context.Context, feedbackID uint) error
	ForProduct(ctx context.Context, productID uint) (items []FeedbackView, averageRating float64, count int, err error)
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	productRepo  repository.ProductRepository
}

// NewFeedbackService creates a new feedback service.
func NewFeedbackService(feedbackRepo repository.FeedbackRepository, productRepo repository.ProductRepository) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		productRepo:  productRepo,
	}
}

// Submit records feedback for a product. A consumer has one feedback slot per
// product; submitting again overwrites the earlier entry.
func (s *feedbackService) Submit(ctx context.Context, consumerID uint, productCode, text string, rating int, photos string) (uint, bool, error) {
	if rating < 1 || rating > 5 {
		return 0, false, apperrors.ErrInvalidRating
	}

	product, err := s.productRepo.FindByCode(ctx, productCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, apperrors.ErrProductNotFound
		}
		return 0, false, fmt.Errorf("find product: %w", err)
	}

	existing, err := s.feedbackRepo.FindByProductAndConsumer(ctx, product.ID, consumerID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, fmt.Errorf("find feedback: %w", err)
	}

	if existing != nil {
		existing.FeedbackText = text
		existing.Rating = rating
		existing.Photos = photos
		if err := s.feedbackRepo.Update(ctx, existing); err != nil {
			return 0, false, fmt.Errorf("update feedback: %w", err)
		}
		return existing.ID, true, nil
	}

	feedback := &model.Feedback{
		ProductID:    product.ID,
		ConsumerID:   consumerID,
		FeedbackText: text,
		Rating:       rating,
		Photos:       photos,
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return 0, false, fmt.Errorf("create feedback: %w", err)
	}
	return feedback.ID, false, nil
}

// Upvote increments the upvote counter on an existing feedback entry.
func (s *feedbackService) Upvote(ctx context.Context, feedbackID uint) error {
	if _, err := s.feedbackRepo.FindByID(ctx, feedbackID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFeedbackNotFound
		}
		return fmt.Errorf("find feedback: %w", err)
	}
	if err := s.feedbackRepo.IncrementUpvotes(ctx, feedbackID); err != nil {
		return fmt.Errorf("increment upvotes: %w", err)
	}
	return nil
}

// ForProduct lists a product's feedback, newest first, with the average
// rating rounded to one decimal place.
func (s *feedbackService) ForProduct(ctx context.Context, productID uint) ([]FeedbackView, float64, int, error) {
	rows, err := s.feedbackRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("list feedback: %w", err)
	}
	items, average := buildFeedbackViews(rows)
	return items, average, len(items), nil
}

// buildFeedbackViews converts joined rows into the consumer-facing shape and
// computes the average rating (1dp).
func buildFeedbackViews(rows []repository.FeedbackWithAuthor) ([]FeedbackView, float64) {
	items := make([]FeedbackView, 0, len(rows))
	total := 0
	for _, row := range rows {
		items = append(items, FeedbackView{
			ID:           row.ID,
			UserName:     row.UserName,
			FeedbackText: row.FeedbackText,
			Rating:       row.Rating,
			Upvotes:      row.Upvotes,
			CreatedAt:    row.CreatedAt.Format(time.RFC3339),
			Photos:       parsePhotos(row.Photos),
		})
		total += row.Rating
	}
	if len(items) == 0 {
		return items, 0
	}
	return items, round1(float64(total) / float64(len(items)))
}

// parsePhotos decodes the stored JSON photo list, tolerating legacy rows with
// empty or invalid payloads.
func parsePhotos(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var photos []string
	if err := json.Unmarshal([]byte(raw), &photos); err != nil {
		return []string{}
	}
	return photos
}
