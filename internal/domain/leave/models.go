package leave

import (
	"time"

	"hris/internal/store"
)

const (
	TypeAnnual    = "annual"
	TypeSick      = "sick"
	TypeMaternity = "maternity"
	TypeEmergency = "emergency"
	TypeUnpaid    = "unpaid"

	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

var Types = []string{TypeAnnual, TypeSick, TypeMaternity, TypeEmergency, TypeUnpaid}

type Request struct {
	store.Meta
	EmployeeID      string     `json:"employeeId"`
	Type            string     `json:"type"`
	StartDate       string     `json:"startDate"`
	EndDate         string     `json:"endDate"`
	Days            int        `json:"days"`
	Reason          string     `json:"reason,omitempty"`
	Status          string     `json:"status"`
	ApproverID      string     `json:"approverId,omitempty"`
	ApproverName    string     `json:"approverName,omitempty"`
	DecidedAt       *time.Time `json:"decidedAt,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
}

var TableRequests = store.NewTable[Request]("leave_requests")
