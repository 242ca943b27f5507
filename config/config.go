package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DBPath            string
	JWTSecret         string
	FirebaseProject   string
	FirebaseCredsFile string
	UploadDir         string
	AdminEmail        string
	AdminPassword     string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:              os.Getenv("PORT"),
		DBPath:            os.Getenv("DB_PATH"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		FirebaseProject:   os.Getenv("FIREBASE_PROJECT_ID"),
		FirebaseCredsFile: os.Getenv("FIREBASE_CREDENTIALS_FILE"),
		UploadDir:         os.Getenv("UPLOAD_DIR"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "sanle.db"
	}
	if cfg.JWTSecret == "" {
		// Bootstrap convenience only. Rotate in any real deployment.
		cfg.JWTSecret = "sanle_secret_key_2024"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "./uploads"
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = "sanleadm@gmail.com"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "654326"
	}
	return cfg
}
