package core

import "hris/internal/store"

const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleManager  = "manager"
	RoleEmployee = "employee"

	StatusActive     = "active"
	StatusInactive   = "inactive"
	StatusTerminated = "terminated"
)

var Roles = []string{RoleAdmin, RoleHR, RoleManager, RoleEmployee}

var EmployeeStatuses = []string{StatusActive, StatusInactive, StatusTerminated}

type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

type Employee struct {
	store.Meta
	EmployeeCode     string            `json:"employeeCode"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone,omitempty"`
	Role             string            `json:"role"`
	Department       string            `json:"department,omitempty"`
	Position         string            `json:"position,omitempty"`
	Salary           *float64          `json:"salary,omitempty"`
	JoinDate         string            `json:"joinDate,omitempty"`
	Location         string            `json:"location,omitempty"`
	Country          string            `json:"country,omitempty"`
	Skills           []string          `json:"skills,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
	Status           string            `json:"status"`
	Permissions      []string          `json:"permissions,omitempty"`
}

type Department struct {
	store.Meta
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ManagerID   string `json:"managerId,omitempty"`
	Location    string `json:"location,omitempty"`
}

const (
	PositionOpen   = "open"
	PositionClosed = "closed"
	PositionOnHold = "on-hold"
)

type SalaryRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type JobPosition struct {
	store.Meta
	Title        string       `json:"title"`
	Department   string       `json:"department,omitempty"`
	Description  string       `json:"description,omitempty"`
	Requirements []string     `json:"requirements,omitempty"`
	SalaryRange  *SalaryRange `json:"salaryRange,omitempty"`
	Status       string       `json:"status"`
	PostedDate   string       `json:"postedDate,omitempty"`
}

const (
	StageApplied   = "applied"
	StageScreening = "screening"
	StageInterview = "interview"
	StageOffer     = "offer"
	StageHired     = "hired"
	StageRejected  = "rejected"
)

var CandidateStages = []string{StageApplied, StageScreening, StageInterview, StageOffer, StageHired, StageRejected}

type Candidate struct {
	store.Meta
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone,omitempty"`
	PositionID     string   `json:"positionId,omitempty"`
	ResumeURL      string   `json:"resumeUrl,omitempty"`
	Stage          string   `json:"stage"`
	Skills         []string `json:"skills,omitempty"`
	ExpectedSalary *float64 `json:"expectedSalary,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

var (
	TableEmployees   = store.NewTable[Employee]("employees")
	TableDepartments = store.NewTable[Department]("departments")
	TablePositions   = store.NewTable[JobPosition]("positions")
	TableCandidates  = store.NewTable[Candidate]("candidates")
)
