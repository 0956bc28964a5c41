package repository

import "strings"

const DefaultNeighborhood = "Ladd Park"

// NormalizeArea maps blank areas onto the deployment's default neighborhood.
func NormalizeArea(value string) string {
	normalized := strings.TrimSpace(value)
	if normalized == "" {
		return DefaultNeighborhood
	}
	return normalized
}

// UserInItemArea is the eligibility-scope rule: owners, holders, recipients
// and waitlisted users must all share the item's pickup area.
func UserInItemArea(user *User, item *Item) bool {
	return NormalizeArea(user.Neighborhood) == NormalizeArea(item.PickupArea)
}
