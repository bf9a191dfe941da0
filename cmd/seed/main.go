package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"swachvillage/internal/config"
	"swachvillage/internal/db"
	"swachvillage/internal/model"
	"swachvillage/internal/repository"
)

const demoPassword = "password123"

// seedBusiness describes one demo business with its certification and products.
type seedBusiness struct {
	User          model.User
	Certification model.BusinessCertification
	Products      []model.Product
}

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.BusinessCertification{},
		&model.Product{},
		&model.Feedback{},
		&model.ProductVerification{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	certRepo := repository.NewCertificationRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	feedbackRepo := repository.NewFeedbackRepository(gormDB)
	ctx := context.Background()

	consumer := model.User{
		FullName:     "Demo Consumer",
		Email:        "consumer@example.com",
		Phone:        "9876500001",
		PasswordHash: string(hash),
		Role:         model.RoleConsumer,
		IsVerified:   true,
	}

	businesses := demoBusinesses(string(hash))

	log.Println("Seeding demo data into database...")

	consumerID, created, err := ensureUser(ctx, userRepo, &consumer)
	if err != nil {
		log.Fatalf("Failed to seed consumer: %v", err)
	}
	users, productsSeeded := boolToInt(created), 0

	var firstProductID uint
	for i := range businesses {
		b := &businesses[i]
		businessID, created, err := ensureUser(ctx, userRepo, &b.User)
		if err != nil {
			log.Fatalf("Failed to seed business %s: %v", b.User.Email, err)
		}
		users += boolToInt(created)

		if _, err := certRepo.FindByUserID(ctx, businessID); err == gorm.ErrRecordNotFound {
			b.Certification.UserID = businessID
			if err := certRepo.Create(ctx, &b.Certification); err != nil {
				log.Fatalf("Failed to seed certification for %s: %v", b.User.Email, err)
			}
		} else if err != nil {
			log.Fatalf("Failed to check certification for %s: %v", b.User.Email, err)
		}

		for j := range b.Products {
			p := &b.Products[j]
			p.BusinessID = businessID
			created, err := ensureProduct(ctx, productRepo, p)
			if err != nil {
				log.Fatalf("Failed to seed product %s: %v", p.ProductName, err)
			}
			productsSeeded += boolToInt(created)
			if firstProductID == 0 {
				firstProductID = p.ID
			}
		}
	}

	// A single feedback entry so dashboards have something to show.
	if firstProductID != 0 {
		if err := ensureFeedback(ctx, feedbackRepo, firstProductID, consumerID); err != nil {
			log.Fatalf("Failed to seed feedback: %v", err)
		}
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New users created: %d", users)
	log.Printf("  - New products created: %d", productsSeeded)
	log.Printf("  - Demo credentials: consumer@example.com / %s", demoPassword)
}

func demoBusinesses(passwordHash string) []seedBusiness {
	return []seedBusiness{
		{
			User: model.User{
				FullName:     "Anita Sharma",
				Email:        "greenleaf@example.com",
				Phone:        "9876500002",
				PasswordHash: passwordHash,
				Role:         model.RoleBusiness,
				IsVerified:   true,
			},
			Certification: model.BusinessCertification{
				BusinessName:        "Green Leaf Organics",
				RegistrationNumber:  "REG-2023-0142",
				GSTNumber:           "22AAAAA0000A1Z5",
				OwnerName:           "Anita Sharma",
				Citizenship:         "Indian",
				OwnerMobile:         "9876500002",
				OwnerEmail:          "greenleaf@example.com",
				VendorCount:         4,
				CleanlinessRating:   5,
				Photos:              "[]",
				SanitationPractices: true,
				WasteManagement:     true,
				IsVegetarian:        true,
				IsVegan:             true,
				CrueltyFree:         true,
				Sustainability:      "Compostable packaging",
				Status:              model.CertificationStatusApproved,
			},
			Products: []model.Product{
				{
					ProductName:         "Cold-Pressed Coconut Oil",
					ProductCode:         uuid.NewString(),
					Category:            "Food",
					Description:         "Single-origin cold-pressed coconut oil.",
					CertificationStatus: "approved",
				},
				{
					ProductName:         "Herbal Soap Bar",
					ProductCode:         uuid.NewString(),
					Category:            "Personal Care",
					Description:         "Handmade soap with neem and tulsi.",
					CertificationStatus: "approved",
				},
			},
		},
		{
			User: model.User{
				FullName:     "Ravi Patel",
				Email:        "purecraft@example.com",
				Phone:        "9876500003",
				PasswordHash: passwordHash,
				Role:         model.RoleBusiness,
				IsVerified:   true,
			},
			Certification: model.BusinessCertification{
				BusinessName:      "PureCraft Foods",
				OwnerName:         "Ravi Patel",
				Citizenship:       "Indian",
				OwnerMobile:       "9876500003",
				OwnerEmail:        "purecraft@example.com",
				CleanlinessRating: 4,
				Photos:            "[]",
				IsVegetarian:      true,
				Status:            model.CertificationStatusPending,
			},
			Products: []model.Product{
				{
					ProductName:         "Stone-Ground Jaggery",
					ProductCode:         uuid.NewString(),
					Category:            "Food",
					Description:         "Chemical-free jaggery blocks.",
					CertificationStatus: "pending",
				},
			},
		},
	}
}

// ensureUser creates the user unless the email is already registered.
// Returns the user ID either way.
func ensureUser(ctx context.Context, repo repository.UserRepository, user *model.User) (uint, bool, error) {
	existing, err := repo.FindByEmail(ctx, user.Email)
	if err == nil {
		return existing.ID, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return 0, false, fmt.Errorf("error checking user %s: %w", user.Email, err)
	}
	if err := repo.Create(ctx, user); err != nil {
		return 0, false, fmt.Errorf("error creating user %s: %w", user.Email, err)
	}
	return user.ID, true, nil
}

// ensureProduct creates the product unless its code is already taken. The
// passed product's ID is populated either way.
func ensureProduct(ctx context.Context, repo repository.ProductRepository, product *model.Product) (bool, error) {
	existing, err := repo.FindByCode(ctx, product.ProductCode)
	if err == nil {
		product.ID = existing.ID
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("error checking product %s: %w", product.ProductCode, err)
	}
	if err := repo.Create(ctx, product); err != nil {
		return false, fmt.Errorf("error creating product %s: %w", product.ProductCode, err)
	}
	return true, nil
}

func ensureFeedback(ctx context.Context, repo repository.FeedbackRepository, productID, consumerID uint) error {
	_, err := repo.FindByProductAndConsumer(ctx, productID, consumerID)
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("error checking feedback: %w", err)
	}
	return repo.Create(ctx, &model.Feedback{
		ProductID:    productID,
		ConsumerID:   consumerID,
		FeedbackText: "Fresh and well packaged, will buy again.",
		Rating:       5,
		Photos:       "[]",
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
