package attendance

import (
	"time"

	"hris/internal/store"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusHalfDay = "half-day"
	StatusLeave   = "leave"
)

var Statuses = []string{StatusPresent, StatusAbsent, StatusLate, StatusHalfDay, StatusLeave}

// StandardHours is the working day length; time beyond it counts as
// overtime.
const StandardHours = 8.0

type Record struct {
	store.Meta
	EmployeeID   string     `json:"employeeId"`
	Date         string     `json:"date"`
	CheckIn      *time.Time `json:"checkIn,omitempty"`
	CheckOut     *time.Time `json:"checkOut,omitempty"`
	Status       string     `json:"status"`
	WorkingHours float64    `json:"workingHours"`
	Overtime     float64    `json:"overtime"`
	Notes        string     `json:"notes,omitempty"`
}

var TableRecords = store.NewTable[Record]("attendance")
