package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeFullDay = "FULLDAY"
	TypeHalfDay = "HALFDAY"

	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Leave struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	EmployeeID string         `gorm:"size:16;not null;index"`
	Date       time.Time      `gorm:"type:date;not null"`
	LeaveType  string         `gorm:"type:varchar(10);not null"`
	Status     string         `gorm:"type:varchar(10);not null;default:PENDING"`
	Reason     string         `gorm:"type:text"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}
