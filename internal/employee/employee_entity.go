package employee

import (
	"time"

	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/department"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee IDs are human-readable codes generated at hire time,
// E<month><year><sequence>, e.g. E0126001 for the first hire of Jan 2026.
type Employee struct {
	ID           string    `gorm:"size:16;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	DepartmentID *uuid.UUID `gorm:"type:uuid"`
	Designation  string     `gorm:"size:255"`
	Location     string     `gorm:"size:255"`
	JoiningDate  time.Time  `gorm:"not null"`
	ResignDate   *time.Time
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	User        *user.User             `gorm:"foreignKey:UserID"`
	Department  *department.Department `gorm:"foreignKey:DepartmentID"`
	BankAccount *BankAccount           `gorm:"foreignKey:EmployeeID"`
}

type BankAccount struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID   string    `gorm:"size:16;uniqueIndex;not null"`
	BankName     string    `gorm:"size:255;not null"`
	AccountTitle string    `gorm:"size:255"`
	AccountNo    string    `gorm:"size:64;not null"`
	BranchCode   string    `gorm:"size:32"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}
