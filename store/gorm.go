package store

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot is the persisted form of one collection: a single JSON document per
// key. Every mutation rewrites the whole document, which is fine at this
// scale.
type Slot struct {
	Key   string         `gorm:"primaryKey;size:64" json:"key"`
	Value datatypes.JSON `gorm:"column:value" json:"value"`
}

// GormBackend persists slots through GORM (MySQL in production).
type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

// Migrate creates the slots table.
func (g *GormBackend) Migrate() error {
	return g.db.AutoMigrate(&Slot{})
}

func (g *GormBackend) Get(key string) ([]byte, bool, error) {
	var slot Slot
	if err := g.db.First(&slot, "`key` = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(slot.Value), true, nil
}

func (g *GormBackend) Set(key string, value []byte) error {
	slot := Slot{Key: key, Value: datatypes.JSON(value)}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&slot).Error
}

func (g *GormBackend) Delete(key string) error {
	return g.db.Delete(&Slot{}, "`key` = ?", key).Error
}
