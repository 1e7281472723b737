package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusLate    = "LATE"
	StatusHalfday = "HALFDAY"
	StatusLeave   = "LEAVE"
)

type Attendance struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID string     `gorm:"column:employee_id;size:16;not null;uniqueIndex:uq_attendance_employee_date,priority:1"`
	Date       time.Time  `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_employee_date,priority:2"`
	Status     string     `gorm:"column:status;type:varchar(20);not null;default:PRESENT"`
	InTime     *time.Time `gorm:"column:in_time;type:timestamptz"`
	OutTime    *time.Time `gorm:"column:out_time;type:timestamptz"`
	// WorkingHours is kept as text; rows imported from the old system carry
	// values that are not always parseable numbers.
	WorkingHours *string        `gorm:"column:working_hours;type:varchar(16)"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Attendance) TableName() string {
	return "attendances"
}
