package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "swachvillage/internal/errors"
	"swachvillage/internal/repository"
)

// ConsumerProfile is the redacted account view returned to the consumer app.
type ConsumerProfile struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	CreatedAt  string `json:"created_at"`
	IsVerified bool   `json:"is_verified"`
}

// ConsumerService serves consumer profile and history views.
type ConsumerService interface {
	Profile(ctx context.Context, userID uint) (*ConsumerProfile, error)
	MyFeedback(ctx context.Context, consumerID uint) ([]repository.ConsumerFeedbackRow, error)
}

type consumerService struct {
	userRepo     repository.UserRepository
	feedbackRepo repository.FeedbackRepository
}

// NewConsumerService creates a new consumer service.
func NewConsumerService(userRepo repository.UserRepository, feedbackRepo repository.FeedbackRepository) ConsumerService {
	return &consumerService{
		userRepo:     userRepo,
		feedbackRepo: feedbackRepo,
	}
}

func (s *consumerService) Profile(ctx context.Context, userID uint) (*ConsumerProfile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &ConsumerProfile{
		ID:         user.ID,
		Name:       user.FullName,
		Email:      user.Email,
		Phone:      user.Phone,
		Role:       user.Role,
		CreatedAt:  user.CreatedAt.Format(time.RFC3339),
		IsVerified: user.IsVerified,
	}, nil
}

func (s *consumerService) MyFeedback(ctx context.Context, consumerID uint) ([]repository.ConsumerFeedbackRow, error) {
	rows, err := s.feedbackRepo.ListByConsumer(ctx, consumerID)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return rows, nil
}
