package task

import (
	"fmt"

	"github.com/taskward/taskward-api/internal/domain"
)

// ErrNotOwned is returned when the acting identity is denied access to a
// task it does not own. It deliberately carries no task data, so a denied
// caller learns nothing about the task beyond its existence.
var ErrNotOwned = fmt.Errorf("%w: task is not owned by the requester", domain.ErrUnauthorized)
