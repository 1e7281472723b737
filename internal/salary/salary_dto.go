package salary

type CreateSalaryRequest struct {
	EmployeeID       string   `json:"employee_id" binding:"required"`
	GrossSalary      float64  `json:"gross_salary" binding:"required,gte=0"`
	FuelEntitlement  *float64 `json:"fuel_entitlement" binding:"omitempty,gte=0"`
	FuelAllowance    float64  `json:"fuel_allowance" binding:"gte=0"`
	MedicalAllowance float64  `json:"medical_allowance" binding:"gte=0"`
}

type UpdateSalaryRequest struct {
	GrossSalary      float64  `json:"gross_salary" binding:"required,gte=0"`
	FuelEntitlement  *float64 `json:"fuel_entitlement" binding:"omitempty,gte=0"`
	FuelAllowance    float64  `json:"fuel_allowance" binding:"gte=0"`
	MedicalAllowance float64  `json:"medical_allowance" binding:"gte=0"`
}

type SalaryResponse struct {
	ID               string   `json:"id"`
	EmployeeID       string   `json:"employee_id"`
	GrossSalary      float64  `json:"gross_salary"`
	FuelEntitlement  *float64 `json:"fuel_entitlement,omitempty"`
	FuelAllowance    float64  `json:"fuel_allowance"`
	MedicalAllowance float64  `json:"medical_allowance"`
}
