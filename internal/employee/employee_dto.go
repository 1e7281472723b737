package employee

type BankAccountRequest struct {
	BankName     string `json:"bank_name" binding:"required"`
	AccountTitle string `json:"account_title"`
	AccountNo    string `json:"account_no" binding:"required"`
	BranchCode   string `json:"branch_code"`
}

type CreateEmployeeRequest struct {
	Name         string              `json:"name" binding:"required"`
	Email        string              `json:"email" binding:"required,email"`
	Password     string              `json:"password" binding:"required,min=8"`
	Contact      *string             `json:"contact"`
	DepartmentID *string             `json:"department_id" binding:"omitempty,uuid"`
	Designation  string              `json:"designation"`
	Location     string              `json:"location"`
	JoiningDate  string              `json:"joining_date" binding:"required"`
	BankAccount  *BankAccountRequest `json:"bank_account"`
}

type UpdateEmployeeRequest struct {
	Name         string              `json:"name" binding:"required"`
	Contact      *string             `json:"contact"`
	DepartmentID *string             `json:"department_id" binding:"omitempty,uuid"`
	Designation  string              `json:"designation"`
	Location     string              `json:"location"`
	ResignDate   *string             `json:"resign_date"`
	BankAccount  *BankAccountRequest `json:"bank_account"`
}

type BankAccountResponse struct {
	BankName     string `json:"bank_name"`
	AccountTitle string `json:"account_title,omitempty"`
	AccountNo    string `json:"account_no"`
	BranchCode   string `json:"branch_code,omitempty"`
}

type EmployeeResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Contact     *string              `json:"contact,omitempty"`
	Department  *string              `json:"department,omitempty"`
	Designation string               `json:"designation,omitempty"`
	Location    string               `json:"location,omitempty"`
	JoiningDate string               `json:"joining_date"`
	ResignDate  *string              `json:"resign_date,omitempty"`
	BankAccount *BankAccountResponse `json:"bank_account,omitempty"`
}

// EmployeeOption is the light projection used by dropdowns.
type EmployeeOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
