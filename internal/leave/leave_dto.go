package leave

type CreateLeaveRequest struct {
	Date      string `json:"date" binding:"required"`
	LeaveType string `json:"leave_type" binding:"required"`
	Reason    string `json:"reason"`
}

type DecideLeaveRequest struct {
	Status string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
}

type LeaveResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	LeaveType  string `json:"leave_type"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
}
