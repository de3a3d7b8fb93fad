package usecase

import (
	"strings"

	"loungeadvisor-service/internal/domain/entity"
)

// AccessResult is the outcome of matching a traveler's memberships against
// a lounge's accepted providers
type AccessResult struct {
	HasAccess bool
	Matches   []entity.AccessMatch
}

// MatchAccess reports whether any membership grants entry to a lounge
// accepting the given providers. A membership matches a provider when
// either string contains the other after lowercasing, so "Amex" matches
// "American Express Platinum Card". Deliberately permissive; known to
// produce false positives for very short membership strings. Pure and
// stable: matches are ordered by membership, then provider, as given.
func MatchAccess(memberships, providers []string) AccessResult {
	result := AccessResult{Matches: []entity.AccessMatch{}}

	for _, membership := range memberships {
		m := strings.ToLower(strings.TrimSpace(membership))
		if m == "" {
			continue
		}
		for _, provider := range providers {
			p := strings.ToLower(strings.TrimSpace(provider))
			if p == "" {
				continue
			}
			if strings.Contains(p, m) || strings.Contains(m, p) {
				result.HasAccess = true
				result.Matches = append(result.Matches, entity.AccessMatch{
					Membership: membership,
					Provider:   provider,
				})
			}
		}
	}

	return result
}
