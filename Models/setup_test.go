package Models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestSetupIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Setup(db))
	require.NoError(t, Setup(db))
}

func TestSeedAdminOnlyOnce(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Setup(db))

	require.NoError(t, SeedAdmin(db, "adm@sanle.com", "654326"))
	require.NoError(t, SeedAdmin(db, "outro@sanle.com", "different"))

	var admins []User
	require.NoError(t, db.Where("role = ?", RoleAdmin).Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, "adm@sanle.com", admins[0].Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword(admins[0].Password, []byte("654326")))
	assert.True(t, admins[0].HasPermission("anything"))
}

func TestTokenBackfillForLegacyServices(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Setup(db))

	legacy := Service{CustomerName: "Antigo", Status: ServicePending}
	require.NoError(t, db.Create(&legacy).Error)
	require.NoError(t, db.Model(&legacy).Update("token", "").Error)

	require.NoError(t, RunMigrations(db))

	var reloaded Service
	require.NoError(t, db.First(&reloaded, legacy.ID).Error)
	assert.NotEmpty(t, reloaded.Token)
}

func TestServiceTokensAreUnique(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Setup(db))

	require.NoError(t, db.Create(&Service{Token: "tok-1", Status: ServicePending}).Error)
	err := db.Create(&Service{Token: "tok-1", Status: ServicePending}).Error
	assert.Error(t, err)
}

func TestNextOSNumberIsSequential(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Setup(db))

	first, err := NextOSNumber(db)
	require.NoError(t, err)
	second, err := NextOSNumber(db)
	require.NoError(t, err)
	assert.Equal(t, first+1, second)
}

func TestCounterSeededFromExistingOrders(t *testing.T) {
	db := openTestDB(t)

	// Orders exist before the counter migration first runs.
	require.NoError(t, db.AutoMigrate(&Service{}, &Counter{}))
	require.NoError(t, db.Create(&Service{Token: "tok-a", Status: ServicePending, OSNumber: 41}).Error)

	require.NoError(t, RunMigrations(db))

	next, err := NextOSNumber(db)
	require.NoError(t, err)
	assert.Equal(t, 42, next)
}

func TestIsValidStatus(t *testing.T) {
	tests := []struct {
		status string
		valid  bool
	}{
		{ServicePending, true},
		{ServiceAccepted, true},
		{ServiceCompleted, true},
		{"cancelled", false},
		{"", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.valid, IsValidStatus(tc.status), tc.status)
	}
}
