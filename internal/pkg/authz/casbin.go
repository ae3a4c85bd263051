package authz

import (
	"context"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
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
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

// RoleAdmin is the role granted to configured administrator identities.
const RoleAdmin = "admin"

// Casbin is an Authorizer backed by an in-memory casbin enforcer.
//
// Policies are seeded from an injected allowlist instead of a policy store:
// every identity in the allowlist is granted the admin role, and the admin
// role may do anything.
type Casbin struct {
	enforcer *casbin.Enforcer
}

// NewCasbin builds an enforcer and grants RoleAdmin to each allowlisted subject.
func NewCasbin(allowlist []string) (*Casbin, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if _, err := e.AddPolicy(RoleAdmin, "*", "*"); err != nil {
		return nil, err
	}

	for _, subject := range allowlist {
		if subject == "" {
			continue
		}
		if _, err := e.AddGroupingPolicy(subject, RoleAdmin); err != nil {
			return nil, err
		}
	}

	return &Casbin{enforcer: e}, nil
}

// Authorize checks the subject against the seeded policies.
func (c *Casbin) Authorize(_ context.Context, subject, obj, act string) (bool, error) {
	return c.enforcer.Enforce(subject, obj, act)
}
