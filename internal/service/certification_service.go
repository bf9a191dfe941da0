package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "swachvillage/internal/errors"
	"swachvillage/internal/model"
	"swachvillage/internal/repository"
)

// Certification submission steps. Anything else is treated as a full
// submission, which also resets the review status to pending.
const (
	StepBusinessDetails  = "business_details"
	StepOwnerDetails     = "owner_details"
	StepVendorCompliance = "vendor_compliance"
	StepCleanliness      = "cleanliness"
	StepCrueltyFree      = "cruelty_free"
	StepSustainability   = "sustainability"
)

// CertificationSubmission is one step (or a full submission) of the
// certification form.
type CertificationSubmission struct {
	Step string

	BusinessName       string
	RegistrationNumber string
	PanCard            string
	AadhaarCard        string
	GSTNumber          string

	OwnerName        string
	Citizenship      string
	OwnerMobile      string
	OwnerEmail       string
	PanCardOwner     string
	AadhaarCardOwner string

	VendorCount         int
	VendorCertification string

	CleanlinessRating   int
	Photos              string
	SanitationPractices bool
	WasteManagement     bool

	IsVegetarian   bool
	IsVegan        bool
	CrueltyFree    bool
	Sustainability string
}

// CertificationDetails is the null-safe view returned to the business app.
// Owner contact falls back to the account's email/phone and owner ID documents
// fall back to the business documents, matching what the form pre-fills.
type CertificationDetails struct {
	ID                  uint   `json:"id"`
	BusinessName        string `json:"business_name"`
	RegistrationNumber  string `json:"registration_number"`
	PanCard             string `json:"pan_card"`
	AadhaarCard         string `json:"aadhaar_card"`
	GSTNumber           string `json:"gst_number"`
	OwnerName           string `json:"owner_name"`
	Citizenship         string `json:"citizenship"`
	OwnerMobile         string `json:"owner_mobile"`
	OwnerEmail          string `json:"owner_email"`
	PanCardOwner        string `json:"pan_card_owner"`
	AadhaarCardOwner    string `json:"aadhaar_card_owner"`
	VendorCount         int    `json:"vendor_count"`
	VendorCertification string `json:"vendor_certification"`
	CleanlinessRating   int    `json:"cleanliness_rating"`
	Photos              string `json:"photos"`
	SanitationPractices bool   `json:"sanitation_practices"`
	WasteManagement     bool   `json:"waste_management"`
	IsVegetarian        bool   `json:"is_vegetarian"`
	IsVegan             bool   `json:"is_vegan"`
	CrueltyFree         bool   `json:"cruelty_free"`
	Sustainability      string `json:"sustainability"`
	Status              string `json:"status"`
	CreatedAt           string `json:"created_at"`
	UpdatedAt           string `json:"updated_at"`
}

// CertificationService handles the step-wise certification workflow.
type CertificationService interface {
	Submit(ctx context.Context, userID uint, submission CertificationSubmission) (model.CertificationStatus, error)
	Get(ctx context.Context, userID uint) (*CertificationDetails, error)
}

type certificationService struct {
	certRepo repository.CertificationRepository
	userRepo repository.UserRepository
}

// NewCertificationService creates a new certification service.
func NewCertificationService(certRepo repository.CertificationRepository, userRepo repository.UserRepository) CertificationService {
	return &certificationService{
		certRepo: certRepo,
		userRepo: userRepo,
	}
}

// Submit applies one step of the certification form, or a full submission.
// Businesses registered through the auth flow always have a record; the
// insert path covers accounts created before that invariant existed.
func (s *certificationService) Submit(ctx context.Context, userID uint, sub CertificationSubmission) (model.CertificationStatus, error) {
	cert, err := s.certRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("find certification: %w", err)
		}
		cert = &model.BusinessCertification{UserID: userID}
		applyAll(cert, sub)
		if err := s.certRepo.Create(ctx, cert); err != nil {
			return "", fmt.Errorf("create certification: %w", err)
		}
		return model.CertificationStatusPending, nil
	}

	switch sub.Step {
	case StepBusinessDetails:
		cert.BusinessName = sub.BusinessName
		cert.RegistrationNumber = sub.RegistrationNumber
		cert.PanCard = sub.PanCard
		cert.AadhaarCard = sub.AadhaarCard
		cert.GSTNumber = sub.GSTNumber
	case StepOwnerDetails:
		cert.OwnerName = sub.OwnerName
		cert.Citizenship = sub.Citizenship
		cert.OwnerMobile = sub.OwnerMobile
		cert.OwnerEmail = sub.OwnerEmail
		cert.PanCardOwner = sub.PanCardOwner
		cert.AadhaarCardOwner = sub.AadhaarCardOwner
	case StepVendorCompliance:
		cert.VendorCount = sub.VendorCount
		cert.VendorCertification = sub.VendorCertification
	case StepCleanliness:
		cert.CleanlinessRating = sub.CleanlinessRating
		cert.Photos = sub.Photos
		cert.SanitationPractices = sub.SanitationPractices
		cert.WasteManagement = sub.WasteManagement
	case StepCrueltyFree:
		cert.IsVegetarian = sub.IsVegetarian
		cert.IsVegan = sub.IsVegan
		cert.CrueltyFree = sub.CrueltyFree
	case StepSustainability:
		cert.Sustainability = sub.Sustainability
	default:
		// Full submission resubmits the application for review.
		cert.BusinessName = sub.BusinessName
		cert.RegistrationNumber = sub.RegistrationNumber
		cert.PanCard = sub.PanCard
		cert.AadhaarCard = sub.AadhaarCard
		cert.GSTNumber = sub.GSTNumber
		cert.OwnerName = sub.OwnerName
		cert.Citizenship = sub.Citizenship
		cert.CrueltyFree = sub.CrueltyFree
		cert.Sustainability = sub.Sustainability
		cert.Status = model.CertificationStatusPending
	}

	if err := s.certRepo.Update(ctx, cert); err != nil {
		return "", fmt.Errorf("update certification: %w", err)
	}
	return model.CertificationStatusPending, nil
}

func applyAll(cert *model.BusinessCertification, sub CertificationSubmission) {
	cert.BusinessName = sub.BusinessName
	cert.RegistrationNumber = sub.RegistrationNumber
	cert.PanCard = sub.PanCard
	cert.AadhaarCard = sub.AadhaarCard
	cert.GSTNumber = sub.GSTNumber
	cert.OwnerName = sub.OwnerName
	cert.Citizenship = sub.Citizenship
	cert.OwnerMobile = sub.OwnerMobile
	cert.OwnerEmail = sub.OwnerEmail
	cert.PanCardOwner = sub.PanCardOwner
	cert.AadhaarCardOwner = sub.AadhaarCardOwner
	cert.VendorCount = sub.VendorCount
	cert.VendorCertification = sub.VendorCertification
	cert.CleanlinessRating = sub.CleanlinessRating
	cert.Photos = sub.Photos
	cert.SanitationPractices = sub.SanitationPractices
	cert.WasteManagement = sub.WasteManagement
	cert.IsVegetarian = sub.IsVegetarian
	cert.IsVegan = sub.IsVegan
	cert.CrueltyFree = sub.CrueltyFree
	cert.Sustainability = sub.Sustainability
}

// Get returns the certification record with form-friendly defaults filled in.
func (s *certificationService) Get(ctx context.Context, userID uint) (*CertificationDetails, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	cert, err := s.certRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCertificationNotFound
		}
		return nil, fmt.Errorf("find certification: %w", err)
	}

	var userEmail, userPhone string
	if user != nil {
		userEmail = user.Email
		userPhone = user.Phone
	}

	details := &CertificationDetails{
		ID:                  cert.ID,
		BusinessName:        cert.BusinessName,
		RegistrationNumber:  cert.RegistrationNumber,
		PanCard:             cert.PanCard,
		AadhaarCard:         cert.AadhaarCard,
		GSTNumber:           cert.GSTNumber,
		OwnerName:           cert.OwnerName,
		Citizenship:         fallback(cert.Citizenship, "Indian"),
		OwnerMobile:         fallback(cert.OwnerMobile, userPhone),
		OwnerEmail:          fallback(cert.OwnerEmail, userEmail),
		PanCardOwner:        fallback(cert.PanCardOwner, cert.PanCard),
		AadhaarCardOwner:    fallback(cert.AadhaarCardOwner, cert.AadhaarCard),
		VendorCount:         cert.VendorCount,
		VendorCertification: cert.VendorCertification,
		CleanlinessRating:   cert.CleanlinessRating,
		Photos:              fallback(cert.Photos, "[]"),
		SanitationPractices: cert.SanitationPractices,
		WasteManagement:     cert.WasteManagement,
		IsVegetarian:        cert.IsVegetarian,
		IsVegan:             cert.IsVegan,
		CrueltyFree:         cert.CrueltyFree,
		Sustainability:      cert.Sustainability,
		Status:              string(fallbackStatus(cert.Status)),
		CreatedAt:           cert.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           cert.UpdatedAt.Format(time.RFC3339),
	}
	return details, nil
}

func fallback(value string, defaults ...string) string {
	if value != "" {
		return value
	}
	for _, d := range defaults {
		if d != "" {
			return d
		}
	}
	return ""
}

func fallbackStatus(status model.CertificationStatus) model.CertificationStatus {
	if status == "" {
		return model.CertificationStatusPending
	}
	return status
}
