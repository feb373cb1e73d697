package model

import "time"

// UnauthorizedAttempt is written in addition to (never instead of) a
// PunchEvent when the punch lands outside every geofence.
type UnauthorizedAttempt struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	Timestamp string  `gorm:"not null" json:"timestamp"`
	WorkerID  string  `gorm:"index;not null" json:"workerId"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	AccuracyM float64 `json:"accuracy"`
	DistanceM float64 `json:"distance"`
	Reason    string  `json:"reason"`
	UserAgent string  `json:"userAgent"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
}

func (UnauthorizedAttempt) TableName() string {
	return "unauthorized_logs"
}
