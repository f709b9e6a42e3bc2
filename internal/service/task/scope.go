package task

import (
	"github.com/google/uuid"

	"github.com/taskward/taskward-api/internal/authz"
)

// Scope selects the ownership behavior for a controller call. It is a tagged
// variant: either Unscoped (the legacy tier with no ownership enforcement)
// or ScopedToOwner (every access filtered and checked against one identity).
// The zero value is the unscoped variant.
type Scope struct {
	owner uuid.NullUUID
}

// Unscoped returns the scope with no ownership enforcement. Tasks created
// under it have no owner, and reads and mutations skip the policy entirely.
func Unscoped() Scope {
	return Scope{}
}

// ScopedToOwner returns the scope bound to the given authenticated user.
func ScopedToOwner(userID uuid.UUID) Scope {
	return Scope{owner: uuid.NullUUID{UUID: userID, Valid: true}}
}

// OwnerID returns the bound user ID and whether the scope is owner-bound.
func (s Scope) OwnerID() (uuid.UUID, bool) {
	return s.owner.UUID, s.owner.Valid
}

// identity converts the scope into the policy's identity-option.
func (s Scope) identity() *authz.Identity {
	if !s.owner.Valid {
		return nil
	}
	return &authz.Identity{UserID: s.owner.UUID}
}
