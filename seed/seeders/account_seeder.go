package seeders

import (
	"log"
	"time"

	"github.com/recuerdo-labs/escape_api/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoOwnerID is the fixed id of the seeded demo content owner so the
// fact and reward seeders can reference it without a lookup.
const DemoOwnerID = "0190a000-0000-7000-8000-000000000001"

// DemoPlayerID is the fixed id of the seeded demo player account.
const DemoPlayerID = "0190a000-0000-7000-8000-000000000002"

// AccountSeeder handles seeding demo accounts
type AccountSeeder struct {
	db *gorm.DB
}

// NewAccountSeeder creates a new account seeder
func NewAccountSeeder(db *gorm.DB) *AccountSeeder {
	return &AccountSeeder{db: db}
}

// SeedAccounts seeds a demo content owner and a demo player
func (s *AccountSeeder) SeedAccounts() error {
	accounts := s.getDemoAccounts()

	for _, account := range accounts {
		var existing model.User
		if err := s.db.Where("id = ?", account.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&account).Error; err != nil {
					log.Printf("Error creating account %s: %v", account.Username, err)
					return err
				}
				log.Printf("Created account: %s (password: demo-Pass1)", account.Email)
			} else {
				log.Printf("Error checking account %s: %v", account.Username, err)
				return err
			}
		} else {
			log.Printf("Account %s already exists, skipping", account.Username)
		}
	}

	log.Println("Account seeding completed successfully")
	return nil
}

func (s *AccountSeeder) getDemoAccounts() []model.User {
	now := time.Now()
	hashed, err := bcrypt.GenerateFromPassword([]byte("demo-Pass1"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	return []model.User{
		{
			ID:        DemoOwnerID,
			Email:     "owner@escape.local",
			Username:  "demoowner",
			Password:  string(hashed),
			Role:      model.RoleUser,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        DemoPlayerID,
			Email:     "player@escape.local",
			Username:  "demoplayer",
			Password:  string(hashed),
			Role:      model.RoleUser,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
