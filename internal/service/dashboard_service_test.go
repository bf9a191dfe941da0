package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"swachvillage/internal/model"
	"swachvillage/internal/repository"
)

func TestDashboardService_Dashboard(t *testing.T) {
	t.Run("no certification returns the default payload", func(t *testing.T) {
		mockCerts := new(MockCertificationRepository)
		mockCerts.On("FindByUserID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

		service := NewDashboardService(mockCerts, new(MockUserRepository), new(MockProductRepository), new(MockFeedbackRepository), new(MockVerificationRepository))
		data, err := service.Dashboard(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, "not_submitted", data.Stats.CertificationStatus)
		assert.Equal(t, "Your Business", data.Stats.BusinessName)
		assert.Empty(t, data.RecentActivity)
		assert.Zero(t, data.CompletionPercentage)
	})

	t.Run("aggregates stats, progress and recent activity", func(t *testing.T) {
		mockCerts := new(MockCertificationRepository)
		mockUsers := new(MockUserRepository)
		mockProducts := new(MockProductRepository)
		mockFeedback := new(MockFeedbackRepository)
		mockVerifications := new(MockVerificationRepository)

		mockCerts.On("FindByUserID", mock.Anything, uint(7)).Return(&model.BusinessCertification{
			ID:                 1,
			UserID:             7,
			BusinessName:       "Green Leaf Organics",
			RegistrationNumber: "REG-2023-0142",
			OwnerName:          "Anita Sharma",
			OwnerMobile:        "9876500002",
			OwnerEmail:         "anita@example.com",
			VendorCount:        4,
			CleanlinessRating:  5,
			CrueltyFree:        true,
			Status:             model.CertificationStatusApproved,
		}, nil)
		mockFeedback.On("BusinessStats", mock.Anything, uint(7)).Return(&repository.BusinessFeedbackStats{
			TotalFeedback: 3,
			AverageRating: 4.3333,
			FiveStar:      2,
			FourStar:      0,
			ThreeStar:     1,
		}, nil)
		mockVerifications.On("CountByBusiness", mock.Anything, uint(7)).Return(int64(42), nil)

		older := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
		newer := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
		mockProducts.On("ListRecentByBusiness", mock.Anything, uint(7), 5).Return([]model.Product{
			{ID: 12, ProductName: "Coconut Oil", CertificationStatus: "approved", CreatedAt: older},
		}, nil)
		mockFeedback.On("ListByBusiness", mock.Anything, uint(7), 5).Return([]repository.BusinessFeedbackRow{
			{ProductID: 12, ProductName: "Coconut Oil", FeedbackID: 42, Rating: 5, FeedbackText: "Great", ConsumerName: "Demo Consumer", CreatedAt: &newer},
		}, nil)

		service := NewDashboardService(mockCerts, mockUsers, mockProducts, mockFeedback, mockVerifications)
		data, err := service.Dashboard(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), data.Stats.TotalScans)
		assert.Equal(t, int64(3), data.Stats.TotalFeedback)
		assert.Equal(t, 4.3, data.Stats.AverageRating)
		assert.Equal(t, "approved", data.Stats.CertificationStatus)
		assert.True(t, data.CertificationComplete)

		// All five sections have data
		assert.True(t, data.Progress.BusinessDetails)
		assert.True(t, data.Progress.OwnerDetails)
		assert.True(t, data.Progress.VendorCompliance)
		assert.True(t, data.Progress.Cleanliness)
		assert.True(t, data.Progress.CrueltyFree)
		assert.Equal(t, 100, data.CompletionPercentage)

		// Feedback is newer than the product, so it sorts first
		assert.Len(t, data.RecentActivity, 2)
		assert.Equal(t, "feedback", data.RecentActivity[0].Type)
		assert.Equal(t, "product", data.RecentActivity[1].Type)
	})
}

func TestDashboardService_Feedback(t *testing.T) {
	mockFeedback := new(MockFeedbackRepository)
	now := time.Now()

	mockFeedback.On("ListByBusiness", mock.Anything, uint(7), 0).Return([]repository.BusinessFeedbackRow{
		{ProductID: 12, ProductName: "Coconut Oil", FeedbackID: 42, Rating: 5, FeedbackText: "Great", ConsumerName: "Demo Consumer", CreatedAt: &now},
	}, nil)
	mockFeedback.On("BusinessStats", mock.Anything, uint(7)).Return(&repository.BusinessFeedbackStats{
		TotalFeedback: 1,
		AverageRating: 5,
		FiveStar:      1,
	}, nil)

	service := NewDashboardService(new(MockCertificationRepository), new(MockUserRepository), new(MockProductRepository), mockFeedback, new(MockVerificationRepository))
	items, summary, err := service.Feedback(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, uint(42), items[0].ID)
	assert.Equal(t, "Coconut Oil", items[0].ProductName)
	assert.Equal(t, int64(1), summary.TotalFeedback)
	assert.Equal(t, int64(1), summary.RatingDistribution["5"])
	assert.Equal(t, int64(0), summary.RatingDistribution["1"])
}

func TestDashboardService_Profile(t *testing.T) {
	t.Run("joins account and certification", func(t *testing.T) {
		mockCerts := new(MockCertificationRepository)
		mockUsers := new(MockUserRepository)

		mockUsers.On("FindByID", mock.Anything, uint(7)).Return(&model.User{
			ID:       7,
			FullName: "Anita Sharma",
			Email:    "anita@example.com",
			Role:     model.RoleBusiness,
		}, nil)
		mockCerts.On("FindByUserID", mock.Anything, uint(7)).Return(&model.BusinessCertification{
			ID:           1,
			UserID:       7,
			BusinessName: "Green Leaf Organics",
			Status:       model.CertificationStatusApproved,
		}, nil)

		service := NewDashboardService(mockCerts, mockUsers, new(MockProductRepository), new(MockFeedbackRepository), new(MockVerificationRepository))
		profile, err := service.Profile(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, "Anita Sharma", profile.FullName)
		assert.NotNil(t, profile.Business)
		assert.Equal(t, "Green Leaf Organics", profile.Business.BusinessName)
		assert.Equal(t, "approved", profile.Business.CertificationStatus)
	})

	t.Run("missing certification leaves business nil", func(t *testing.T) {
		mockCerts := new(MockCertificationRepository)
		mockUsers := new(MockUserRepository)

		mockUsers.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, FullName: "Anita Sharma"}, nil)
		mockCerts.On("FindByUserID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

		service := NewDashboardService(mockCerts, mockUsers, new(MockProductRepository), new(MockFeedbackRepository), new(MockVerificationRepository))
		profile, err := service.Profile(context.Background(), 7)

		assert.NoError(t, err)
		assert.Nil(t, profile.Business)
	})
}
