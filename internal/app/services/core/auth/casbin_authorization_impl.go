package auth

import (
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/pkg/exceptions"

	"github.com/casbin/casbin/v2"
)

type casbinAuthorization struct {
	enforcer *casbin.Enforcer
}

func NewCasbinAuthorization(enforcer *casbin.Enforcer) contracts.AuthorizationService {
	return &casbinAuthorization{enforcer: enforcer}
}

func (a *casbinAuthorization) Enforce(role, path, method string) (bool, error) {
	allowed, err := a.enforcer.Enforce(role, path, method)
	if err != nil {
		return false, exceptions.ErrAuthEnforce(err)
	}
	return allowed, nil
}
