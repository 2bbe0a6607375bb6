package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/recuerdo-labs/escape_api/seed/seeders"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, accounts, facts, rewards")
		dbPath   = flag.String("db", "", "Database path (overrides DB_DATABASE env var)")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	databasePath := *dbPath
	if databasePath == "" {
		databasePath = os.Getenv("DB_DATABASE")
		if databasePath == "" {
			databasePath = "escape_api.db"
		}
	}

	db, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Printf("Connected to database: %s", databasePath)

	mainSeeder := seeders.NewMainSeeder(db)

	switch *seedType {
	case "all":
		log.Println("Running complete database seeding...")
		if err := mainSeeder.SeedAll(); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	case "accounts":
		log.Println("Seeding demo accounts only...")
		if err := mainSeeder.SeedAccountsOnly(); err != nil {
			log.Fatalf("Failed to seed accounts: %v", err)
		}
	case "facts":
		log.Println("Seeding demo facts only...")
		if err := mainSeeder.SeedFactsOnly(); err != nil {
			log.Fatalf("Failed to seed facts: %v", err)
		}
	case "rewards":
		log.Println("Seeding demo rewards only...")
		if err := mainSeeder.SeedRewardsOnly(); err != nil {
			log.Fatalf("Failed to seed rewards: %v", err)
		}
	default:
		log.Fatalf("Unknown seed type: %s. Use 'all', 'accounts', 'facts', or 'rewards'", *seedType)
	}

	log.Println("Seeding operation completed successfully!")
}

func showHelp() {
	log.Println(`
Database Seeding Tool for the Escape API

Usage: go run seed/main.go [flags]

Flags:
  -type string
        Type of seeding to perform (default "all")
        Options: all, accounts, facts, rewards
  -db string
        Database path (overrides DB_DATABASE environment variable)
  -help
        Show this help message

Examples:
  # Seed everything
  go run seed/main.go

  # Seed only the demo accounts
  go run seed/main.go -type=accounts

  # Seed with custom database path
  go run seed/main.go -db=./custom.db

Environment Variables:
  DB_DATABASE - Default database path (default: escape_api.db)
`)
}
