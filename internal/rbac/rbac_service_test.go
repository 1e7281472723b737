package rbac_test

import (
	"testing"

	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestEnforce_AdminInheritsEverything(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	allowed, err := svc.Enforce(rbac.RoleAdmin, "payroll", "edit")
	assert.NoError(t, err)
	assert.True(t, allowed)

	// Inherited through HR -> EMPLOYEE chain.
	allowed, err = svc.Enforce(rbac.RoleAdmin, "leave", "create")
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestEnforce_EmployeeCannotTouchPayroll(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	for _, action := range []string{"read", "edit", "export", "generate"} {
		allowed, err := svc.Enforce(rbac.RoleEmployee, "payroll", action)
		assert.NoError(t, err)
		assert.False(t, allowed, "employee should not have payroll:%s", action)
	}
}

func TestEnforce_HRManagesPeopleNotPayroll(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	allowed, err := svc.Enforce(rbac.RoleHR, "employee", "create")
	assert.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = svc.Enforce(rbac.RoleHR, "payroll", "edit")
	assert.NoError(t, err)
	assert.False(t, allowed)
}
