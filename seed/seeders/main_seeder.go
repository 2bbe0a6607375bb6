package seeders

import (
	"log"

	"gorm.io/gorm"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

// NewMainSeeder creates a new main seeder
func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders in the correct order
func (s *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	// 1. Seed demo accounts first (everything else hangs off the owner)
	accountSeeder := NewAccountSeeder(s.db)
	if err := accountSeeder.SeedAccounts(); err != nil {
		log.Printf("Account seeding failed: %v", err)
		return err
	}

	// 2. Seed facts for the demo owner
	factSeeder := NewFactSeeder(s.db)
	if err := factSeeder.SeedFacts(); err != nil {
		log.Printf("Fact seeding failed: %v", err)
		return err
	}

	// 3. Seed rewards for the demo owner
	rewardSeeder := NewRewardSeeder(s.db)
	if err := rewardSeeder.SeedRewards(); err != nil {
		log.Printf("Reward seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedAccountsOnly seeds only the demo accounts
func (s *MainSeeder) SeedAccountsOnly() error {
	accountSeeder := NewAccountSeeder(s.db)
	return accountSeeder.SeedAccounts()
}

// SeedFactsOnly seeds only the demo facts
func (s *MainSeeder) SeedFactsOnly() error {
	factSeeder := NewFactSeeder(s.db)
	return factSeeder.SeedFacts()
}

// SeedRewardsOnly seeds only the demo rewards
func (s *MainSeeder) SeedRewardsOnly() error {
	rewardSeeder := NewRewardSeeder(s.db)
	return rewardSeeder.SeedRewards()
}
