package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanModify(t *testing.T) {
	t.Parallel()

	owner := &Requester{ID: 5, Role: RoleUser}
	admin := &Requester{ID: 1, Role: RoleAdmin}

	tests := []struct {
		name          string
		requester     *Requester
		targetID      int64
		hasRoleChange bool
		wantStatus    int // 0 means allowed
		wantMessage   string
	}{
		{
			name:       "no requester",
			requester:  nil,
			targetID:   5,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:      "owner updates own record",
			requester: owner,
			targetID:  5,
		},
		{
			name:        "non-owner non-admin denied",
			requester:   owner,
			targetID:    9,
			wantStatus:  http.StatusForbidden,
			wantMessage: "You can only update your own account",
		},
		{
			name:          "non-owner non-admin denied before role check",
			requester:     &Requester{ID: 7, Role: RoleUser},
			targetID:      5,
			hasRoleChange: true,
			wantStatus:    http.StatusForbidden,
			wantMessage:   "You can only update your own account",
		},
		{
			name:          "owner cannot change own role",
			requester:     owner,
			targetID:      5,
			hasRoleChange: true,
			wantStatus:    http.StatusForbidden,
			wantMessage:   "Only admin users can change roles",
		},
		{
			name:      "admin updates any record",
			requester: admin,
			targetID:  5,
		},
		{
			name:          "admin changes roles",
			requester:     admin,
			targetID:      5,
			hasRoleChange: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			denial := CanModify(tc.requester, tc.targetID, tc.hasRoleChange)
			if tc.wantStatus == 0 {
				assert.Nil(t, denial)
				return
			}
			require.NotNil(t, denial)
			assert.Equal(t, tc.wantStatus, denial.Status)
			if tc.wantMessage != "" {
				assert.Equal(t, tc.wantMessage, denial.Message)
			}
		})
	}
}

func TestCanDelete(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, CanDelete(nil, 5))
	assert.Nil(t, CanDelete(&Requester{ID: 5, Role: RoleUser}, 5))
	assert.Nil(t, CanDelete(&Requester{ID: 1, Role: RoleAdmin}, 5))

	denial := CanDelete(&Requester{ID: 7, Role: RoleUser}, 5)
	require.NotNil(t, denial)
	assert.Equal(t, http.StatusForbidden, denial.Status)
	assert.Equal(t, "You can only delete your own account", denial.Message)
}
