package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"swachvillage/internal/cache"
	apperrors "swachvillage/internal/errors"
	"swachvillage/internal/model"
	"swachvillage/internal/repository"
)

const (
	productCacheTTL   = 5 * time.Minute
	directoryCacheTTL = time.Minute
)

// CertifiedBusiness is the certifying business block on the product details
// view, including the product's feedback thread.
type CertifiedBusiness struct {
	ID                  uint           `json:"id"`
	BusinessName        string         `json:"business_name"`
	CertificationStatus string         `json:"certification_status"`
	CleanlinessRating   int            `json:"cleanliness_rating"`
	IsVegetarian        bool           `json:"is_vegetarian"`
	IsVegan             bool           `json:"is_vegan"`
	CrueltyFree         bool           `json:"cruelty_free"`
	Photos              []string       `json:"photos"`
	Feedback            []FeedbackView `json:"feedback"`
	AverageRating       float64        `json:"average_rating"`
}

// ProductSummary is the product block on the product details view.
type ProductSummary struct {
	ID                  uint   `json:"id"`
	ProductCode         string `json:"product_code"`
	CertificationStatus string `json:"certification_status"`
}

// ProductDetails is the full consumer-facing product page.
type ProductDetails struct {
	Business CertifiedBusiness `json:"business"`
	Product  ProductSummary    `json:"product"`
}

// VerifiedProduct is the payload returned when a consumer verifies a product
// through the scanner flow.
type VerifiedProduct struct {
	ID                  uint   `json:"id"`
	ProductName         string `json:"product_name"`
	ProductCode         string `json:"product_code"`
	Category            string `json:"category"`
	Description         string `json:"description"`
	CertificationStatus string `json:"certification_status"`
	BusinessID          uint   `json:"business_id"`
	BusinessName        string `json:"business_name"`
}

// DirectoryPage is one page of the public business directory.
type DirectoryPage struct {
	Businesses []repository.BusinessListing `json:"businesses"`
	Total      int64                        `json:"total"`
	Page       int                          `json:"page"`
	TotalPages int                          `json:"total_pages"`
}

// ProductService handles product verification, details, registration and the
// public business directory.
type ProductService interface {
	Verify(ctx context.Context, barcode string) (*model.Product, error)
	Details(ctx context.Context, productCode string) (*ProductDetails, error)
	Register(ctx context.Context, businessID uint, productName, productCode string) (*model.Product, error)
	VerifyAndRecord(ctx context.Context, userID uint, productCode, method string) (*VerifiedProduct, error)
	Directory(ctx context.Context, page, limit int) (*DirectoryPage, error)
}

type productService struct {
	productRepo      repository.ProductRepository
	certRepo         repository.CertificationRepository
	feedbackRepo     repository.FeedbackRepository
	verificationRepo repository.VerificationRepository
	cache            *cache.Client
}

// NewProductService creates a new product service.
func NewProductService(
	productRepo repository.ProductRepository,
	certRepo repository.CertificationRepository,
	feedbackRepo repository.FeedbackRepository,
	verificationRepo repository.VerificationRepository,
	cache *cache.Client,
) ProductService {
	return &productService{
		productRepo:      productRepo,
		certRepo:         certRepo,
		feedbackRepo:     feedbackRepo,
		verificationRepo: verificationRepo,
		cache:            cache,
	}
}

func productCacheKey(code string) string {
	return "product:code:" + code
}

// findByCodeCached looks a product up by code with a read-through cache.
// Product rows are immutable after registration so a short TTL is enough.
func (s *productService) findByCodeCached(ctx context.Context, code string) (*model.Product, error) {
	if data, _ := s.cache.Get(ctx, productCacheKey(code)); data != nil {
		var cached model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.productRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	if payload, err := json.Marshal(product); err == nil {
		_ = s.cache.Set(ctx, productCacheKey(code), payload, productCacheTTL)
	}
	return product, nil
}

// Verify resolves a scanned barcode to a product.
func (s *productService) Verify(ctx context.Context, barcode string) (*model.Product, error) {
	return s.findByCodeCached(ctx, barcode)
}

// Details builds the consumer product page: product, certifying business and
// the product's feedback thread.
func (s *productService) Details(ctx context.Context, productCode string) (*ProductDetails, error) {
	product, err := s.findByCodeCached(ctx, productCode)
	if err != nil {
		return nil, err
	}

	cert, err := s.certRepo.FindByUserID(ctx, product.BusinessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("find business: %w", err)
	}

	rows, err := s.feedbackRepo.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	feedback, average := buildFeedbackViews(rows)

	return &ProductDetails{
		Business: CertifiedBusiness{
			ID:                  cert.UserID,
			BusinessName:        cert.BusinessName,
			CertificationStatus: string(fallbackStatus(cert.Status)),
			CleanlinessRating:   cert.CleanlinessRating,
			IsVegetarian:        cert.IsVegetarian,
			IsVegan:             cert.IsVegan,
			CrueltyFree:         cert.CrueltyFree,
			Photos:              parsePhotos(cert.Photos),
			Feedback:            feedback,
			AverageRating:       average,
		},
		Product: ProductSummary{
			ID:                  product.ID,
			ProductCode:         product.ProductCode,
			CertificationStatus: product.CertificationStatus,
		},
	}, nil
}

// Register lists a new product under the business. Product codes are globally
// unique.
func (s *productService) Register(ctx context.Context, businessID uint, productName, productCode string) (*model.Product, error) {
	if _, err := s.productRepo.FindByCode(ctx, productCode); err == nil {
		return nil, apperrors.ErrProductCodeTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check product code: %w", err)
	}

	product := &model.Product{
		BusinessID:          businessID,
		ProductName:         productName,
		ProductCode:         productCode,
		CertificationStatus: string(model.CertificationStatusPending),
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// VerifyAndRecord resolves a product code and records the verification event
// for the business's scan statistics.
func (s *productService) VerifyAndRecord(ctx context.Context, userID uint, productCode, method string) (*VerifiedProduct, error) {
	product, err := s.findByCodeCached(ctx, productCode)
	if err != nil {
		return nil, err
	}

	var businessName string
	if cert, err := s.certRepo.FindByUserID(ctx, product.BusinessID); err == nil {
		businessName = cert.BusinessName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find business: %w", err)
	}

	verification := &model.ProductVerification{
		ProductID: product.ID,
		UserID:    userID,
		Method:    method,
	}
	if err := s.verificationRepo.Create(ctx, verification); err != nil {
		return nil, fmt.Errorf("record verification: %w", err)
	}

	return &VerifiedProduct{
		ID:                  product.ID,
		ProductName:         product.ProductName,
		ProductCode:         product.ProductCode,
		Category:            product.Category,
		Description:         product.Description,
		CertificationStatus: product.CertificationStatus,
		BusinessID:          product.BusinessID,
		BusinessName:        businessName,
	}, nil
}

// Directory returns a page of the public business directory with average
// ratings, cached briefly since it backs the app's landing screen.
func (s *productService) Directory(ctx context.Context, page, limit int) (*DirectoryPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	key := fmt.Sprintf("businesses:%d:%d", page, limit)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached DirectoryPage
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	listings, err := s.certRepo.ListDirectory(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	for i := range listings {
		listings[i].Rating = round1(listings[i].Rating)
		if listings[i].CertificationStatus == "" {
			listings[i].CertificationStatus = string(model.CertificationStatusPending)
		}
	}

	total, err := s.certRepo.CountDirectory(ctx)
	if err != nil {
		return nil, fmt.Errorf("count businesses: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}

	result := &DirectoryPage{
		Businesses: listings,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
	if payload, err := json.Marshal(result); err == nil {
		_ = s.cache.Set(ctx, key, payload, directoryCacheTTL)
	}
	return result, nil
}
