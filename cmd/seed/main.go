package main

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/automeet-app/automeet/internal/domain/entities"
	"github.com/automeet-app/automeet/internal/infrastructure/database"
	"github.com/automeet-app/automeet/pkg/config"
	pkgjwt "github.com/automeet-app/automeet/pkg/jwt"
)

// seedPassword is the shared password for every seeded account
const seedPassword = "password123"

func main() {
	log.Println("🚀 Starting test users creation...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Initialize JWT manager
	jwtManager := pkgjwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Define test users
	testUsers := []struct {
		Email string
		Name  string
	}{
		{Email: "alice@test.local", Name: "Alice"},
		{Email: "bob@test.local", Name: "Bob"},
		{Email: "charlie@test.local", Name: "Charlie"},
	}

	log.Println("🗑️  Cleaning up existing test users...")
	db.Where("email LIKE ?", "%@test.local").Delete(&entities.User{})

	log.Println("🔑 Creating test users and tokens...")

	for i, testUser := range testUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		user := entities.NewUser(testUser.Name, testUser.Email, string(hash))
		if err := db.Create(user).Error; err != nil {
			log.Printf("❌ Failed to create user %s: %v", testUser.Email, err)
			continue
		}

		token, err := jwtManager.GenerateToken(user.ID, user.Email)
		if err != nil {
			log.Printf("❌ Failed to generate token for %s: %v", testUser.Email, err)
			continue
		}

		fmt.Printf("═══════════════════════════════════════════════════════\n")
		fmt.Printf("🟢 User %d: %s\n", i+1, testUser.Name)
		fmt.Printf("Email:    %s\n", user.Email)
		fmt.Printf("Password: %s\n", seedPassword)
		fmt.Printf("User ID:  %s\n", user.ID)
		fmt.Printf("\n📋 Token (Copy to Postman):\n%s\n", token)
		fmt.Printf("───────────────────────────────────────────────────────\n\n")
	}

	log.Println("✅ All test users created successfully!")
	log.Println("💡 Usage: set header Authorization: Bearer <token>")
	log.Println("🧹 To clean up, run: DELETE FROM users WHERE email LIKE '%@test.local'")
}
