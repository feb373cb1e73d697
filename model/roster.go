package model

import "time"

// Worker is a factory-floor worker eligible to punch. Only active rows
// appear in the roster endpoints and in the presence report.
type Worker struct {
	ID       int32  `gorm:"primaryKey;autoIncrement" json:"-"`
	WorkerID string `gorm:"uniqueIndex;size:50;not null" json:"workerId"`
	Name     string `gorm:"not null" json:"name"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"-"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"-"`
}

func (Worker) TableName() string {
	return "workers"
}

// Employee is office staff. The password is plaintext and returned to the
// client for client-side verification; the deployment accepts this.
type Employee struct {
	ID       int32  `gorm:"primaryKey;autoIncrement" json:"-"`
	EmpID    string `gorm:"uniqueIndex;size:50;not null" json:"empId"`
	Name     string `gorm:"not null" json:"name"`
	Password string `json:"password"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"-"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"-"`
}

func (Employee) TableName() string {
	return "employees"
}
