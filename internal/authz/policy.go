// Package authz implements the authorization policy for task access.
//
// The policy is a set of pure functions over an optional identity and a
// target task. It holds no request or framework state, so it can be tested
// without any HTTP scaffolding. A nil *Identity means the request is
// anonymous.
package authz

import (
	"github.com/google/uuid"

	"github.com/taskward/taskward-api/internal/domain"
)

// Decision is the binary outcome of an authorization check.
type Decision int

const (
	// Deny means the acting identity may not perform the operation.
	Deny Decision = iota

	// Allow means the operation may proceed.
	Allow
)

// Allowed reports whether the decision permits the operation.
func (d Decision) Allowed() bool {
	return d == Allow
}

// String returns the decision name for logs.
func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// Identity is the authenticated user making a request.
type Identity struct {
	UserID uuid.UUID
}

// CanListAll decides whether the identity may list tasks.
// Any authenticated identity may list; scoping to the identity's own tasks
// is applied by the store query, not by per-item denial.
func CanListAll(identity *Identity) Decision {
	if identity == nil {
		return Deny
	}
	return Allow
}

// CanCreate decides whether the identity may create a task.
func CanCreate(identity *Identity) Decision {
	if identity == nil {
		return Deny
	}
	return Allow
}

// CanView decides whether the identity may read the given task.
// An ownerless task is visible to anyone; an owned task only to its owner.
func CanView(identity *Identity, task *domain.Task) Decision {
	if task == nil {
		return Deny
	}

	if !task.OwnerID.Valid {
		return Allow
	}

	if identity != nil && task.IsOwnedBy(identity.UserID) {
		return Allow
	}

	return Deny
}

// CanMutate decides whether the identity may update, complete, or delete the
// given task. There is no finer-grained permission tiering: the rule is the
// same single ownership test as CanView.
func CanMutate(identity *Identity, task *domain.Task) Decision {
	return CanView(identity, task)
}
