package notifications

import (
	"time"

	"hris/internal/store"
)

const (
	TypeInfo    = "info"
	TypeWarning = "warning"
	TypeError   = "error"
	TypeSuccess = "success"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"

	CategorySystem      = "system"
	CategoryLeave       = "leave"
	CategoryPayroll     = "payroll"
	CategoryAttendance  = "attendance"
	CategoryRecruitment = "recruitment"
	CategoryAsset       = "asset"
)

var (
	Types      = []string{TypeInfo, TypeWarning, TypeError, TypeSuccess}
	Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
	Categories = []string{CategorySystem, CategoryLeave, CategoryPayroll, CategoryAttendance, CategoryRecruitment, CategoryAsset}
)

type Notification struct {
	store.Meta
	UserID    string     `json:"userId"`
	Type      string     `json:"type"`
	Priority  string     `json:"priority"`
	Category  string     `json:"category"`
	Title     string     `json:"title"`
	Message   string     `json:"message,omitempty"`
	Read      bool       `json:"read"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

var TableNotifications = store.NewTable[Notification]("notifications")
