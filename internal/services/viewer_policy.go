package services

import "github.com/hypergym/hypergym/internal/models"

// Role-scoped visibility rules. Admins see everything, coaches see the
// members of their own branch, members see only themselves. Community
// posts follow a stricter rule (branch isolation for every role) and
// are filtered at the query layer.

func VisibleUsers(all []models.User, requester models.User) []models.User {
	switch requester.Role {
	case models.RoleAdmin:
		visible := make([]models.User, len(all))
		copy(visible, all)
		return visible
	case models.RoleCoach:
		visible := make([]models.User, 0)
		for _, user := range all {
			if user.BranchID == requester.BranchID && user.Role == models.RoleMember {
				visible = append(visible, user)
			}
		}
		return visible
	default:
		for _, user := range all {
			if user.ID == requester.ID {
				user.Rank = BranchRank(all, user)
				return []models.User{user}
			}
		}
		// A requester missing from the store reads as an empty roster,
		// not a failure.
		return []models.User{}
	}
}

func VisibleWorkouts(all []models.WorkoutSession, requester models.User) []models.WorkoutSession {
	switch requester.Role {
	case models.RoleAdmin:
		visible := make([]models.WorkoutSession, len(all))
		copy(visible, all)
		return visible
	case models.RoleCoach:
		visible := make([]models.WorkoutSession, 0)
		for _, session := range all {
			if session.BranchID == requester.BranchID {
				visible = append(visible, session)
			}
		}
		return visible
	default:
		visible := make([]models.WorkoutSession, 0)
		for _, session := range all {
			if session.UserID == requester.ID {
				visible = append(visible, session)
			}
		}
		return visible
	}
}
