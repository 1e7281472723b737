package attendance

type UpsertAttendanceRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	Status     string  `json:"status" binding:"required"`
	InTime     *string `json:"in_time"`
	OutTime    *string `json:"out_time"`
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	InTime       *string `json:"in_time,omitempty"`
	OutTime      *string `json:"out_time,omitempty"`
	WorkingHours *string `json:"working_hours,omitempty"`
}
