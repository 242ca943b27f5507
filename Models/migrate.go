package Models

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Migration is one schema or data step applied after AutoMigrate. Every
// step checks its own applicability instead of relying on a swallowed
// "column already exists" error, so the list can run on every boot.
type Migration struct {
	Name string
	Run  func(db *gorm.DB) error
}

var migrations = []Migration{
	{
		Name: "services_token_unique_index",
		Run: func(db *gorm.DB) error {
			return db.Exec(
				"CREATE UNIQUE INDEX IF NOT EXISTS idx_services_token ON services (token) WHERE deleted_at IS NULL",
			).Error
		},
	},
	{
		// Legacy rows created before the public driver link existed have
		// no token. Every service must be reachable by one.
		Name: "backfill_service_tokens",
		Run: func(db *gorm.DB) error {
			var orphans []Service
			if err := db.Where("token IS NULL OR token = ''").Find(&orphans).Error; err != nil {
				return err
			}
			for i := range orphans {
				if err := db.Model(&orphans[i]).Update("token", uuid.NewString()).Error; err != nil {
					return err
				}
			}
			if len(orphans) > 0 {
				log.Printf("Backfilled tokens for %d legacy services", len(orphans))
			}
			return nil
		},
	},
	{
		// Seed the order-number counter from existing data so numbering
		// continues instead of restarting at 1.
		Name: "seed_os_number_counter",
		Run: func(db *gorm.DB) error {
			var count int64
			if err := db.Model(&Counter{}).Where("name = ?", OSNumberCounter).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return nil
			}
			var max int
			if err := db.Model(&Service{}).Select("COALESCE(MAX(os_number), 0)").Scan(&max).Error; err != nil {
				return err
			}
			return db.Create(&Counter{Name: OSNumberCounter, Value: max}).Error
		},
	},
}

// RunMigrations applies the ordered migration list. Steps are idempotent,
// so a failure on one boot is retried on the next.
func RunMigrations(db *gorm.DB) error {
	for _, m := range migrations {
		if err := m.Run(db); err != nil {
			log.Printf("Migration %s failed: %v", m.Name, err)
			return err
		}
	}
	return nil
}
