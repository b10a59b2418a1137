package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	cases := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleEmployee, PermissionAttendanceClock, true},
		{RoleEmployee, PermissionLeaveCreate, true},
		{RoleEmployee, PermissionLeaveDecide, false},
		{RoleEmployee, PermissionPayrollEdit, false},
		{RoleManager, PermissionLeaveDecide, true},
		{RoleManager, PermissionLoanDecide, true},
		{RoleManager, PermissionAttendanceClock, false},
		{RoleHR, PermissionEmployeeManage, true},
		{RoleHR, PermissionPayrollToggle, true},
		{Role("unknown"), PermissionLeaveViewOwn, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, HasPermission(c.role, c.permission), "role=%s permission=%s", c.role, c.permission)
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("employee"))
	assert.True(t, ValidRole("manager"))
	assert.True(t, ValidRole("hr"))
	assert.False(t, ValidRole("admin"))
	assert.False(t, ValidRole(""))
}

func TestUserRoleChecks(t *testing.T) {
	hr := &User{Role: RoleHR}
	manager := &User{Role: RoleManager}
	employee := &User{Role: RoleEmployee}

	assert.True(t, hr.IsHR())
	assert.True(t, hr.CanDecide())
	assert.False(t, manager.IsHR())
	assert.True(t, manager.CanDecide())
	assert.False(t, employee.IsManager())
	assert.False(t, employee.CanDecide())
}
