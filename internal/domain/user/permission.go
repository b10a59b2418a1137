package user

type Permission string

const (
	// Attendance
	PermissionAttendanceClock   Permission = "attendance.clock"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Leave
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveDecide  Permission = "leave.decide"

	// Loans
	PermissionLoanApply   Permission = "loan.apply"
	PermissionLoanViewOwn Permission = "loan.view_own"
	PermissionLoanViewAll Permission = "loan.view_all"
	PermissionLoanDecide  Permission = "loan.decide"

	// Payroll
	PermissionPayrollViewOwn Permission = "payroll.view_own"
	PermissionPayrollViewAll Permission = "payroll.view_all"
	PermissionPayrollEdit    Permission = "payroll.edit"
	PermissionPayrollToggle  Permission = "payroll.toggle"

	// Employees
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleEmployee: {
		PermissionAttendanceClock,
		PermissionAttendanceViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewOwn,
		PermissionLoanApply,
		PermissionLoanViewOwn,
		PermissionPayrollViewOwn,
	},
	RoleManager: {
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionLeaveViewOwn,
		PermissionLeaveViewAll,
		PermissionLeaveDecide,
		PermissionLoanViewOwn,
		PermissionLoanViewAll,
		PermissionLoanDecide,
		PermissionPayrollViewOwn,
		PermissionPayrollViewAll,
		PermissionPayrollEdit,
		PermissionPayrollToggle,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
	},
	RoleHR: {
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionLeaveViewOwn,
		PermissionLeaveViewAll,
		PermissionLeaveDecide,
		PermissionLoanViewOwn,
		PermissionLoanViewAll,
		PermissionLoanDecide,
		PermissionPayrollViewOwn,
		PermissionPayrollViewAll,
		PermissionPayrollEdit,
		PermissionPayrollToggle,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
	},
}

// HasPermission reports whether role carries permission.
func HasPermission(role Role, permission Permission) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}
