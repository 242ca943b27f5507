package Models

import "gorm.io/gorm"

const OSNumberCounter = "os_number"

// Counter backs the human-readable order numbering. Incrementing through
// a single UPDATE keeps concurrent service creations from handing out the
// same number, which the old scan-the-table approach could not guarantee.
type Counter struct {
	Name  string `gorm:"primaryKey;size:64"`
	Value int
}

// NextOSNumber reserves and returns the next order number.
func NextOSNumber(db *gorm.DB) (int, error) {
	var next int
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Counter{}).
			Where("name = ?", OSNumberCounter).
			Update("value", gorm.Expr("value + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			next = 1
			return tx.Create(&Counter{Name: OSNumberCounter, Value: 1}).Error
		}
		var c Counter
		if err := tx.Where("name = ?", OSNumberCounter).First(&c).Error; err != nil {
			return err
		}
		next = c.Value
		return nil
	})
	return next, err
}
