package model

import "time"

const (
	ActionLogin  = "LOGIN"
	ActionLogout = "LOGOUT"
	ActionNone   = "NONE"
)

const (
	KindWorker   = "WORKER"
	KindEmployee = "EMPLOYEE"
)

// PunchEvent is one check-in or check-out attempt. Rows are append-only:
// written exactly once per punch, never updated or deleted.
type PunchEvent struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Timestamp is stored pre-formatted in the factory timezone,
	// layout "02/01/2006, 15:04:05".
	Timestamp       string  `gorm:"not null" json:"timestamp"`
	WorkerID        string  `gorm:"index;not null" json:"workerId"`
	Name            string  `json:"name"`
	Action          string  `gorm:"size:10;not null" json:"action"`
	Latitude        float64 `json:"lat"`
	Longitude       float64 `json:"lng"`
	AccuracyM       float64 `json:"accuracy"`
	WithinGeofence  bool    `json:"withinGeofence"`
	MatchedLocation string  `json:"matchedLocation"`
	UserAgent       string  `json:"userAgent"`
	Kind            string  `gorm:"size:10" json:"kind"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
}

func (PunchEvent) TableName() string {
	return "attendance_logs"
}
