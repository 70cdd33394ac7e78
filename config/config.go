package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

var (
	Port string

	SecretKey []byte

	// AdminPasswordHash is the bcrypt hash of the shared admin password,
	// computed once at startup.
	AdminPasswordHash []byte
)

func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		log.Fatal("JWT secret key not set")
	}
	SecretKey = []byte(secret)

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("admin password not set")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}
	AdminPasswordHash = hash
}
