package setting

import (
	"time"

	"github.com/google/uuid"
)

// Well-known setting titles.
const (
	TitleFuelPrice     = "FUEL_PRICE"
	TitleLeavesAllowed = "LEAVES_ALLOWED"
)

// Defaults applied when a setting row is absent or unparseable.
const (
	DefaultFuelRate      = 300.0
	DefaultLeavesAllowed = 1.5
)

type Setting struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"size:64;not null;uniqueIndex:uq_setting_title"`
	Value     string    `gorm:"size:255;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
