package domain

// Principal is the resolved identity for one request, reconstructed
// from a verified access token's claims. It is never persisted.
//
// Roles are the set embedded at token issuance time. A role change
// therefore only takes effect on the user's next login or refresh;
// that staleness is the price of skipping a store round-trip on every
// protected call.
type Principal struct {
	UserID uint
	Email  string
	Roles  []string
}

// HasRole reports whether the principal holds the given role
func (p *Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the principal holds the ADMIN role
func (p *Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}
