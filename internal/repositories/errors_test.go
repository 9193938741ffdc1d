package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepositoryError_Classification(t *testing.T) {
	notFound := NotFoundError("snapshot", "1.0.0")
	assert.True(t, IsNotFound(notFound))
	assert.True(t, errors.Is(notFound, ErrNotFound))
	assert.Equal(t, "snapshot 1.0.0 not found", notFound.Error())

	wrapped := fmt.Errorf("publish: %w", DuplicateError("snapshot", "version", "1.0.0"))
	assert.True(t, IsDuplicate(wrapped))
	assert.False(t, IsNotFound(wrapped))

	assert.True(t, IsValidation(ValidationError("snapshot", "x", errors.New("bad"))))
	assert.True(t, IsConstraint(ConstraintError("lint_run", "snapshot_id", errors.New("fk"))))

	generic := NewRepositoryError("list", "snapshot", "", errors.New("disk full"))
	assert.Equal(t, "snapshot list operation failed: disk full", generic.Error())
}

func TestListOptions_Normalize(t *testing.T) {
	assert.Equal(t, ListOptions{Limit: DefaultLimit}, ListOptions{}.Normalize())
	assert.Equal(t, ListOptions{Limit: MaxLimit, Offset: 0}, ListOptions{Limit: 10000, Offset: -3}.Normalize())
	assert.Equal(t, ListOptions{Limit: 5, Offset: 10}, ListOptions{Limit: 5, Offset: 10}.Normalize())
}
