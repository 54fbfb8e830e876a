package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnnouncementStatus(t *testing.T) {
	for _, valid := range []string{"OPEN", "CLOSED", "DELETED"} {
		status, err := ParseAnnouncementStatus(valid)
		require.NoError(t, err)
		assert.EqualValues(t, valid, status)
	}

	for _, invalid := range []string{"", "open", "ARCHIVED", "Deleted"} {
		_, err := ParseAnnouncementStatus(invalid)
		assert.ErrorIs(t, err, ErrInvalidStatus, "value %q", invalid)
	}
}

func TestPrincipalRolePredicates(t *testing.T) {
	p := &Principal{UserID: 1, Email: "a@example.com", Roles: []string{RoleOwner}}
	assert.True(t, p.HasRole(RoleOwner))
	assert.False(t, p.IsAdmin())

	both := &Principal{UserID: 2, Email: "b@example.com", Roles: []string{RoleOwner, RoleAdmin}}
	assert.True(t, both.IsAdmin())
}
