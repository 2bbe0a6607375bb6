package seeders

import (
	"encoding/json"
	"log"
	"time"

	"github.com/recuerdo-labs/escape_api/model"
	"github.com/recuerdo-labs/escape_api/shared"
	"gorm.io/gorm"
)

// FactSeeder handles seeding demo facts
type FactSeeder struct {
	db *gorm.DB
}

// NewFactSeeder creates a new fact seeder
func NewFactSeeder(db *gorm.DB) *FactSeeder {
	return &FactSeeder{db: db}
}

// SeedFacts seeds a small pool of facts for the demo content owner
func (s *FactSeeder) SeedFacts() error {
	facts := s.getDemoFacts()

	for _, fact := range facts {
		var existing model.Fact
		if err := s.db.Where("id = ?", fact.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&fact).Error; err != nil {
					log.Printf("Error creating fact %s: %v", fact.ID, err)
					return err
				}
				log.Printf("Created fact: %s", fact.Prompt)
			} else {
				log.Printf("Error checking fact %s: %v", fact.ID, err)
				return err
			}
		} else {
			log.Printf("Fact %s already exists, skipping", fact.ID)
		}
	}

	log.Println("Fact seeding completed successfully")
	return nil
}

func (s *FactSeeder) getDemoFacts() []model.Fact {
	now := time.Now()

	return []model.Fact{
		{
			ID:      "fact_demo_cafe",
			OwnerID: DemoOwnerID,
			Type:    shared.FactTypeText,
			Prompt:  "What do I always order at our corner place?",
			Hints: jsonArray([]string{
				"You tease me about it every single time",
				"It comes in a tiny cup",
			}),
			Value:      jsonValue(model.FactValue{Text: "Cafe"}),
			Difficulty: shared.DifficultyEasy,
			IsActive:   true,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:      "fact_demo_first_trip",
			OwnerID: DemoOwnerID,
			Type:    shared.FactTypeDate,
			Prompt:  "When did we take our first trip together?",
			Hints: jsonArray([]string{
				"It was summer",
				"The year the old apartment flooded",
			}),
			Value:      jsonValue(model.FactValue{Date: "2020-06-15"}),
			Difficulty: shared.DifficultyMedium,
			IsActive:   true,
			CreatedAt:  now.Add(time.Second),
			UpdatedAt:  now.Add(time.Second),
		},
		{
			ID:      "fact_demo_proposal",
			OwnerID: DemoOwnerID,
			Type:    shared.FactTypePlace,
			Prompt:  "Where did I finally work up the nerve to ask?",
			Hints: jsonArray([]string{
				"We could see the whole city from there",
			}),
			Value:      jsonValue(model.FactValue{Place: "Montmartre"}),
			Difficulty: shared.DifficultyHard,
			IsActive:   true,
			CreatedAt:  now.Add(2 * time.Second),
			UpdatedAt:  now.Add(2 * time.Second),
		},
		{
			ID:         "fact_demo_song",
			OwnerID:    DemoOwnerID,
			Type:       shared.FactTypeText,
			Prompt:     "Which song was playing when we met?",
			Hints:      jsonArray([]string{"It is older than both of us"}),
			Value:      jsonValue(model.FactValue{Text: "La Vie en Rose"}),
			Difficulty: shared.DifficultyMedium,
			IsActive:   true,
			CreatedAt:  now.Add(3 * time.Second),
			UpdatedAt:  now.Add(3 * time.Second),
		},
		{
			ID:         "fact_demo_anniversary",
			OwnerID:    DemoOwnerID,
			Type:       shared.FactTypeDate,
			Prompt:     "What date do we celebrate every year?",
			Hints:      jsonArray([]string{"Winter", "Two days before a holiday"}),
			Value:      jsonValue(model.FactValue{Date: "2018-12-23"}),
			Difficulty: shared.DifficultyEasy,
			IsActive:   true,
			CreatedAt:  now.Add(4 * time.Second),
			UpdatedAt:  now.Add(4 * time.Second),
		},
	}
}

// jsonArray marshals a string slice into a raw JSON column value
func jsonArray(items []string) json.RawMessage {
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("Error marshaling array: %v", err)
		return json.RawMessage("[]")
	}
	return data
}

// jsonValue marshals a fact value into a raw JSON column value
func jsonValue(v model.FactValue) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error marshaling fact value: %v", err)
		return json.RawMessage("{}")
	}
	return data
}
