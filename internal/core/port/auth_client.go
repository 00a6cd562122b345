package port

import "context"

// User roles known to the authentication service. The core never enforces
// roles itself; route middleware does.
const (
	RoleClient    = "client"
	RoleAgent     = "agent"
	RoleAgency    = "agency"
	RoleBuilder   = "builder"
	RoleDeveloper = "developer"
	RoleAdmin     = "admin"
)

// Claims is the token payload returned by the authentication service.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// AuthClientPort validates bearer tokens against the external
// authentication service.
type AuthClientPort interface {
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}
