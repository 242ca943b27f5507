package Models

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the embedded database and brings the schema up to date.
// The local file is the fallback store when the cloud project is
// unreachable, so boot must succeed without any network access.
func Connect(path string) error {
	connection, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}
	DB = connection
	return Setup(connection)
}

// Setup migrates the schema on an already-open connection. Split out of
// Connect so tests can run against their own in-memory databases.
func Setup(db *gorm.DB) error {
	// 1. Base tables first
	if err := db.AutoMigrate(
		&User{},
		&Company{},
		&Driver{},
		&Vehicle{},
		&Counter{},
	); err != nil {
		return err
	}

	// 2. Then tables referencing them
	if err := db.AutoMigrate(
		&Service{},
		&Trip{},
		&Expense{},
		&Contract{},
	); err != nil {
		return err
	}

	// 3. Ordered follow-up migrations, each idempotent
	return RunMigrations(db)
}

// SeedAdmin inserts the bootstrap administrator if no admin exists yet.
// The default credential is a first-login convenience, not a security
// control; rotate it in any real deployment.
func SeedAdmin(db *gorm.DB, email, password string) error {
	var count int64
	if err := db.Model(&User{}).Where("role = ?", RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := User{
		Email:       email,
		Password:    hashed,
		Name:        "Administrador Sanle",
		Role:        RoleAdmin,
		Permissions: []byte(`["all"]`),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("Seeded administrator account %s", email)
	return nil
}
