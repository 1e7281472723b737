package salary

import (
	"time"

	"github.com/google/uuid"
)

// Salary is the current pay structure for one employee. Fuel entitlement is
// litres per month; when it is null the flat fuel allowance amount applies
// instead.
type Salary struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID       string    `gorm:"size:16;uniqueIndex:uq_salary_employee;not null"`
	GrossSalary      float64   `gorm:"not null"`
	FuelEntitlement  *float64
	FuelAllowance    float64
	MedicalAllowance float64
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}
