package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"restaurant-api/internal/model"
)

func TestAuthorizeOwnerScoped(t *testing.T) {
	tests := []struct {
		name         string
		claimedEmail string
		filterEmail  string
		expectError  bool
	}{
		{
			name:         "Filter matches caller",
			claimedEmail: "user@example.com",
			filterEmail:  "user@example.com",
			expectError:  false,
		},
		{
			name:         "Absent filter is allowed",
			claimedEmail: "user@example.com",
			filterEmail:  "",
			expectError:  false,
		},
		{
			name:         "Filter names someone else",
			claimedEmail: "user@example.com",
			filterEmail:  "other@example.com",
			expectError:  true,
		},
		{
			name:         "Case-sensitive comparison",
			claimedEmail: "user@example.com",
			filterEmail:  "User@example.com",
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeOwnerScoped(tt.claimedEmail, tt.filterEmail)
			if tt.expectError {
				assert.ErrorIs(t, err, model.ErrForbidden)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
