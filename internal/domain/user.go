package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Roles de usuário emitidos pelo provedor de identidade
const (
	RoleAdmin     = 1
	RoleManager   = 2
	RoleReception = 3
)

// Claims são as informações do token emitido pelo provedor de identidade
type Claims struct {
	UserID     string   `json:"user_id"`
	UserName   string   `json:"user_name"`
	UserRoleID int      `json:"user_role_id"`
	UserUnits  []string `json:"user_units"`
	jwt.RegisteredClaims
}

// CanAccessUnit informa se o usuário pode consultar a unidade
func (c *Claims) CanAccessUnit(unitID string) bool {
	if len(c.UserUnits) == 0 {
		return true
	}

	for _, unit := range c.UserUnits {
		if unit == unitID || unit == AllUnits {
			return true
		}
	}
	return false
}

func (c *Claims) IsAdmin() bool {
	return c.UserRoleID == RoleAdmin
}
