// Package seed provides database seeding utilities for development and
// testing. Seed data is never used in production.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"mindease/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configuration for the seeder
type Options struct {
	NumUsers       int
	NumDiscussions int
	ShouldClean    bool
}

var departments = []string{"CSE", "EEE", "BBA", "Law", "Pharmacy", "English", "Civil"}

var batches = []string{"56", "57", "58", "59", "60", "61"}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	log.Printf("🌱 Starting database seeding with %d users and %d discussions...", opts.NumUsers, opts.NumDiscussions)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	discussions, err := createDiscussions(db, users, opts.NumDiscussions)
	if err != nil {
		return fmt.Errorf("failed to create discussions: %w", err)
	}
	log.Printf("✓ %d discussions created", len(discussions))

	if err := createEngagement(db, users, discussions); err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}
	log.Println("✓ likes and replies created")

	if err := createChats(db, users); err != nil {
		return fmt.Errorf("failed to create chats: %w", err)
	}
	log.Println("✓ chat messages created")

	if err := createFriendMesh(db, users); err != nil {
		return fmt.Errorf("failed to create friend mesh: %w", err)
	}
	log.Println("✓ friend relations created")

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	tables := []string{"post_likes", "post_replies", "discussions", "chat_messages", "friends", "users"}
	for _, t := range tables {
		if err := db.Exec("DELETE FROM " + t).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(db *gorm.DB, count int) ([]models.User, error) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	users := make([]models.User, 0, count)

	// Always include a known login for manual testing.
	if count >= 1 {
		users = append(users, models.User{
			Name:       "Test User",
			Email:      "test@example.com",
			Password:   string(hashedPassword),
			Department: "CSE",
			Batch:      "58",
		})
	}

	for i := len(users); i < count; i++ {
		name := gofakeit.Name()
		nickname := gofakeit.Username()
		bio := gofakeit.Sentence(10)
		users = append(users, models.User{
			Name:       name,
			Email:      fmt.Sprintf("%d.%s", i, gofakeit.Email()),
			Password:   string(hashedPassword),
			Department: departments[rand.Intn(len(departments))],
			Batch:      batches[rand.Intn(len(batches))],
			Nickname:   &nickname,
			Bio:        &bio,
		})
	}

	if err := db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func createDiscussions(db *gorm.DB, users []models.User, count int) ([]models.Discussion, error) {
	if len(users) == 0 || count == 0 {
		return nil, nil
	}

	discussions := make([]models.Discussion, 0, count)
	for i := 0; i < count; i++ {
		author := users[rand.Intn(len(users))]
		d := models.Discussion{
			UserID:    author.ID,
			Content:   gofakeit.Paragraph(1, 3, 8, "\n"),
			CreatedAt: spreadBack(60),
		}

		// Spread across the three visibility shapes.
		switch rand.Intn(3) {
		case 0:
			d.Batch = &author.Batch
			d.Department = &author.Department
		case 1:
			d.Department = &author.Department
		default:
			d.IsPublic = true
		}
		discussions = append(discussions, d)
	}

	if err := db.Create(&discussions).Error; err != nil {
		return nil, err
	}
	return discussions, nil
}

func createEngagement(db *gorm.DB, users []models.User, discussions []models.Discussion) error {
	if len(users) == 0 || len(discussions) == 0 {
		return nil
	}

	for _, d := range discussions {
		for i := 0; i < rand.Intn(5); i++ {
			like := models.PostLike{
				PostID: d.ID,
				UserID: users[rand.Intn(len(users))].ID,
			}
			err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
				DoNothing: true,
			}).Create(&like).Error
			if err != nil {
				return err
			}
		}

		for i := 0; i < rand.Intn(4); i++ {
			reply := models.PostReply{
				PostID:    d.ID,
				UserID:    users[rand.Intn(len(users))].ID,
				Content:   gofakeit.Sentence(12),
				CreatedAt: d.CreatedAt.Add(time.Duration(i+1) * time.Hour),
			}
			if err := db.Create(&reply).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func createChats(db *gorm.DB, users []models.User) error {
	if len(users) == 0 {
		return nil
	}

	for _, u := range users {
		n := rand.Intn(6)
		for i := 0; i < n; i++ {
			msg := models.ChatMessage{
				UserID:    u.ID,
				Content:   gofakeit.HipsterSentence(10),
				CreatedAt: spreadBack(14),
			}
			if err := db.Create(&msg).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func createFriendMesh(db *gorm.DB, users []models.User) error {
	if len(users) < 2 {
		return nil
	}

	for _, u := range users {
		n := rand.Intn(4)
		for j := 0; j < n; j++ {
			other := users[rand.Intn(len(users))]
			if other.ID == u.ID {
				continue
			}
			status := models.FriendStatusAccepted
			if rand.Intn(3) == 0 {
				status = models.FriendStatusPending
			}
			rel := models.FriendRelation{
				UserID:   u.ID,
				FriendID: other.ID,
				Status:   status,
			}
			if err := db.Create(&rel).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// spreadBack returns a timestamp a random amount of time within the last
// maxDays days, so seeded feeds look organic.
func spreadBack(maxDays int) time.Time {
	daysBack := rand.Intn(maxDays)
	hoursBack := rand.Intn(24)
	minsBack := rand.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}
