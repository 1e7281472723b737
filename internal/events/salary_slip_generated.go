package events

import "time"

const SalarySlipGeneratedTopic = "finance.payroll.salary_slip.generated.v1"

type SalarySlipGeneratedEvent struct {
	EventType  string    `json:"event_type"`
	SlipID     string    `json:"slip_id"`
	EmployeeID string    `json:"employee_id"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	NetSalary  float64   `json:"net_salary"`
	OccurredAt time.Time `json:"occurred_at"`
}
