package seeders

import (
	"log"
	"time"

	"github.com/recuerdo-labs/escape_api/model"
	"gorm.io/gorm"
)

// RewardSeeder handles seeding demo rewards
type RewardSeeder struct {
	db *gorm.DB
}

// NewRewardSeeder creates a new reward seeder
func NewRewardSeeder(db *gorm.DB) *RewardSeeder {
	return &RewardSeeder{db: db}
}

// SeedRewards seeds a weighted reward pool for the demo content owner
func (s *RewardSeeder) SeedRewards() error {
	rewards := s.getDemoRewards()

	for _, reward := range rewards {
		var existing model.Reward
		if err := s.db.Where("id = ?", reward.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&reward).Error; err != nil {
					log.Printf("Error creating reward %s: %v", reward.Title, err)
					return err
				}
				log.Printf("Created reward: %s (weight %d)", reward.Title, reward.Weight)
			} else {
				log.Printf("Error checking reward %s: %v", reward.Title, err)
				return err
			}
		} else {
			log.Printf("Reward %s already exists, skipping", reward.Title)
		}
	}

	log.Println("Reward seeding completed successfully")
	return nil
}

func (s *RewardSeeder) getDemoRewards() []model.Reward {
	now := time.Now()

	return []model.Reward{
		{
			ID:          "reward_demo_dinner",
			OwnerID:     DemoOwnerID,
			Title:       "Dinner at the place you pick",
			Description: "Anywhere you want, my treat, no complaints about the bill.",
			Weight:      9,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "reward_demo_weekend",
			OwnerID:     DemoOwnerID,
			Title:       "Surprise weekend away",
			Description: "Bags packed, destination sealed in an envelope.",
			Weight:      1,
			IsActive:    true,
			CreatedAt:   now.Add(time.Second),
			UpdatedAt:   now.Add(time.Second),
		},
		{
			ID:          "reward_demo_breakfast",
			OwnerID:     DemoOwnerID,
			Title:       "Breakfast in bed for a week",
			Description: "Coffee included. Crumbs tolerated.",
			Weight:      5,
			IsActive:    true,
			CreatedAt:   now.Add(2 * time.Second),
			UpdatedAt:   now.Add(2 * time.Second),
		},
	}
}
