package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleAdmin    = "ADMIN"
	RoleHR       = "HR"
	RoleEmployee = "EMPLOYEE"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// policies lists role, resource, action triples. HR inherits from EMPLOYEE
// and ADMIN from HR via the grouping rules below.
var policies = [][]string{
	{RoleEmployee, "attendance", "clock"},
	{RoleEmployee, "attendance", "read"},
	{RoleEmployee, "leave", "create"},
	{RoleEmployee, "leave", "read"},

	{RoleHR, "employee", "create"},
	{RoleHR, "employee", "read"},
	{RoleHR, "employee", "update"},
	{RoleHR, "employee", "delete"},
	{RoleHR, "department", "create"},
	{RoleHR, "department", "read"},
	{RoleHR, "department", "update"},
	{RoleHR, "department", "delete"},
	{RoleHR, "salary", "create"},
	{RoleHR, "salary", "read"},
	{RoleHR, "salary", "update"},
	{RoleHR, "attendance", "manage"},
	{RoleHR, "leave", "approve"},

	{RoleAdmin, "payroll", "read"},
	{RoleAdmin, "payroll", "edit"},
	{RoleAdmin, "payroll", "export"},
	{RoleAdmin, "payroll", "generate"},
	{RoleAdmin, "setting", "read"},
	{RoleAdmin, "setting", "update"},
}

var roleInheritance = [][]string{
	{RoleHR, RoleEmployee},
	{RoleAdmin, RoleHR},
}

type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	for _, g := range roleInheritance {
		if _, err := enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(role, resource, action)
}
