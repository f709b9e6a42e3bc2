package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskward/taskward-api/internal/domain"
)

func ownedTask(t *testing.T, ownerID uuid.UUID) *domain.Task {
	t.Helper()
	task, err := domain.NewOwnedTask(ownerID, "write report")
	require.NoError(t, err)
	return task
}

func ownerlessTask(t *testing.T) *domain.Task {
	t.Helper()
	task, err := domain.NewTask("write report")
	require.NoError(t, err)
	return task
}

func TestCanListAll(t *testing.T) {
	assert.Equal(t, Deny, CanListAll(nil), "anonymous identity cannot list")
	assert.Equal(t, Allow, CanListAll(&Identity{UserID: uuid.New()}))
}

func TestCanCreate(t *testing.T) {
	assert.Equal(t, Deny, CanCreate(nil), "anonymous identity cannot create")
	assert.Equal(t, Allow, CanCreate(&Identity{UserID: uuid.New()}))
}

func TestCanViewOwnedTask(t *testing.T) {
	ownerID := uuid.New()
	task := ownedTask(t, ownerID)

	owner := &Identity{UserID: ownerID}
	stranger := &Identity{UserID: uuid.New()}

	assert.Equal(t, Allow, CanView(owner, task))
	assert.Equal(t, Deny, CanView(stranger, task))
	assert.Equal(t, Deny, CanView(nil, task))
}

func TestCanViewOwnerlessTask(t *testing.T) {
	task := ownerlessTask(t)

	assert.Equal(t, Allow, CanView(nil, task), "ownerless tasks have no ownership to enforce")
	assert.Equal(t, Allow, CanView(&Identity{UserID: uuid.New()}, task))
}

func TestCanViewNilTask(t *testing.T) {
	assert.Equal(t, Deny, CanView(&Identity{UserID: uuid.New()}, nil))
}

// CanMutate must follow exactly the same rule as CanView: update, complete,
// and delete are governed uniformly by the single ownership predicate.
func TestCanMutateMatchesCanView(t *testing.T) {
	ownerID := uuid.New()
	owned := ownedTask(t, ownerID)
	free := ownerlessTask(t)

	identities := []*Identity{
		nil,
		{UserID: ownerID},
		{UserID: uuid.New()},
	}

	for _, identity := range identities {
		for _, task := range []*domain.Task{owned, free, nil} {
			assert.Equal(t, CanView(identity, task), CanMutate(identity, task))
		}
	}
}

func TestDecisionHelpers(t *testing.T) {
	assert.True(t, Allow.Allowed())
	assert.False(t, Deny.Allowed())
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "deny", Deny.String())
}
