package auth

import "restaurant-api/internal/model"

// AuthorizeOwnerScoped is the single authorization rule in the system:
// a caller may only filter a listing by their own email. An absent filter
// is allowed and returns the unrestricted collection.
func AuthorizeOwnerScoped(claimedEmail, filterEmail string) error {
	if filterEmail == "" || filterEmail == claimedEmail {
		return nil
	}
	return model.ErrForbidden
}
