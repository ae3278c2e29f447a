package auth

import "hris/internal/domain/core"

const (
	PermEmployeesRead      = "employees.read"
	PermEmployeesWrite     = "employees.write"
	PermOrgRead            = "org.read"
	PermOrgWrite           = "org.write"
	PermAttendanceRead     = "attendance.read"
	PermAttendanceWrite    = "attendance.write"
	PermLeaveRead          = "leave.read"
	PermLeaveWrite         = "leave.write"
	PermLeaveApprove       = "leave.approve"
	PermPayrollRead        = "payroll.read"
	PermPayrollWrite       = "payroll.write"
	PermAssetsRead         = "assets.read"
	PermAssetsWrite        = "assets.write"
	PermNotificationsRead  = "notifications.read"
	PermNotificationsWrite = "notifications.write"
	PermAnalyticsRead      = "analytics.read"
)

var AllPermissions = []string{
	PermEmployeesRead,
	PermEmployeesWrite,
	PermOrgRead,
	PermOrgWrite,
	PermAttendanceRead,
	PermAttendanceWrite,
	PermLeaveRead,
	PermLeaveWrite,
	PermLeaveApprove,
	PermPayrollRead,
	PermPayrollWrite,
	PermAssetsRead,
	PermAssetsWrite,
	PermNotificationsRead,
	PermNotificationsWrite,
	PermAnalyticsRead,
}

var RolePermissions = map[string][]string{
	core.RoleAdmin: AllPermissions,
	core.RoleHR: {
		PermEmployeesRead,
		PermEmployeesWrite,
		PermOrgRead,
		PermOrgWrite,
		PermAttendanceRead,
		PermAttendanceWrite,
		PermLeaveRead,
		PermLeaveWrite,
		PermLeaveApprove,
		PermPayrollRead,
		PermPayrollWrite,
		PermAssetsRead,
		PermAssetsWrite,
		PermNotificationsRead,
		PermNotificationsWrite,
		PermAnalyticsRead,
	},
	core.RoleManager: {
		PermEmployeesRead,
		PermOrgRead,
		PermAttendanceRead,
		PermAttendanceWrite,
		PermLeaveRead,
		PermLeaveWrite,
		PermLeaveApprove,
		PermAssetsRead,
		PermNotificationsRead,
		PermAnalyticsRead,
	},
	core.RoleEmployee: {
		PermEmployeesRead,
		PermAttendanceRead,
		PermAttendanceWrite,
		PermLeaveRead,
		PermLeaveWrite,
		PermNotificationsRead,
	},
}

// DefaultPermissions returns the permission set for a role. Explicit
// per-employee permissions override this when present.
func DefaultPermissions(role string) []string {
	perms, ok := RolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

func HasPermission(perms []string, permission string) bool {
	for _, candidate := range perms {
		if candidate == permission {
			return true
		}
	}
	return false
}
