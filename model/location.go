package model

import "time"

// Location is a named authorized punch zone. When the table is empty the
// resolver falls back to the single factory point from settings.
type Location struct {
	ID        int32    `gorm:"primaryKey;autoIncrement" json:"-"`
	Name      string   `gorm:"uniqueIndex;not null" json:"name"`
	Latitude  float64  `gorm:"not null" json:"lat"`
	Longitude float64  `gorm:"not null" json:"lng"`
	// RadiusM overrides the default geofence radius when set.
	RadiusM   *float64 `json:"radiusM,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"-"`
}

func (Location) TableName() string {
	return "locations"
}

// SettingRow is one key/value pair in the settings table
// (FACTORY_LAT, FACTORY_LNG, GEOFENCE_RADIUS_M, TIMEZONE, SUPERVISOR_PIN).
type SettingRow struct {
	Key   string `gorm:"primaryKey;column:setting_key;size:50" json:"key"`
	Value string `gorm:"column:setting_value" json:"value"`
}

func (SettingRow) TableName() string {
	return "settings"
}
