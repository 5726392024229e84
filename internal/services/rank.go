package services

import (
	"sort"

	"github.com/hypergym/hypergym/internal/models"
)

// BranchRank returns the target's 1-based position among the members of
// their branch, ordered by points descending. The sort is stable so
// ties keep stored order. Returns 0 when the target is not a ranked
// member of the collection. Rank is derived on every read; it is never
// cached on the stored record.
func BranchRank(all []models.User, target models.User) int {
	branchMembers := make([]models.User, 0)
	for _, user := range all {
		if user.BranchID == target.BranchID && user.Role == models.RoleMember {
			branchMembers = append(branchMembers, user)
		}
	}

	sort.SliceStable(branchMembers, func(i, j int) bool {
		return branchMembers[i].Points > branchMembers[j].Points
	})

	for index, user := range branchMembers {
		if user.ID == target.ID {
			return index + 1
		}
	}
	return 0
}
