// Command main runs the database seeder for MindEase.
package main

import (
	"flag"
	"log"

	"mindease/internal/config"
	"mindease/internal/database"
	"mindease/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numDiscussions := flag.Int("discussions", 200, "Number of discussions to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d discussions, clean=%v\n", *numUsers, *numDiscussions, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect migrates the schema before returning.
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:       *numUsers,
		NumDiscussions: *numDiscussions,
		ShouldClean:    *shouldClean,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Println("📧 All test users have the password: password123")
}
