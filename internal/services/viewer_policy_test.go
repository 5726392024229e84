package services

import (
	"testing"

	"github.com/hypergym/hypergym/internal/models"
)

func rosterFixture() []models.User {
	return []models.User{
		{ID: "u_admin_1", Name: "Ada", Role: models.RoleAdmin, BranchID: "b_nyc_01"},
		{ID: "u_coach_1", Name: "Cole", Role: models.RoleCoach, BranchID: "b_nyc_01"},
		{ID: "u_coach_2", Name: "Cara", Role: models.RoleCoach, BranchID: "b_la_01"},
		{ID: "u_mem_1", Name: "Mia", Role: models.RoleMember, BranchID: "b_nyc_01", Points: 1200},
		{ID: "u_mem_2", Name: "Max", Role: models.RoleMember, BranchID: "b_nyc_01", Points: 3400},
		{ID: "u_mem_3", Name: "Lee", Role: models.RoleMember, BranchID: "b_la_01", Points: 500},
	}
}

func TestVisibleUsersAdminSeesEveryone(t *testing.T) {
	roster := rosterFixture()
	admin := roster[0]

	visible := VisibleUsers(roster, admin)

	if len(visible) != len(roster) {
		t.Fatalf("expected %d visible users, got %d", len(roster), len(visible))
	}
}

func TestVisibleUsersCoachSeesOnlyOwnBranchMembers(t *testing.T) {
	roster := rosterFixture()
	coach := roster[1]

	visible := VisibleUsers(roster, coach)

	if len(visible) != 2 {
		t.Fatalf("expected 2 visible users, got %d", len(visible))
	}
	for _, user := range visible {
		if user.BranchID != "b_nyc_01" {
			t.Fatalf("coach saw user %s from branch %s", user.ID, user.BranchID)
		}
		if user.Role != models.RoleMember {
			t.Fatalf("coach saw non-member %s with role %s", user.ID, user.Role)
		}
	}
}

func TestVisibleUsersMemberSeesOnlySelfWithRank(t *testing.T) {
	roster := rosterFixture()
	member := roster[3] // u_mem_1, 1200 points, second in b_nyc_01

	visible := VisibleUsers(roster, member)

	if len(visible) != 1 {
		t.Fatalf("expected exactly the member themselves, got %d users", len(visible))
	}
	if visible[0].ID != "u_mem_1" {
		t.Fatalf("expected u_mem_1, got %s", visible[0].ID)
	}
	if visible[0].Rank != 2 {
		t.Fatalf("expected rank 2, got %d", visible[0].Rank)
	}
}

func TestVisibleUsersUnknownMemberGetsEmptyRosterNotError(t *testing.T) {
	roster := rosterFixture()
	ghost := models.User{ID: "u_ghost", Role: models.RoleMember, BranchID: "b_nyc_01"}

	visible := VisibleUsers(roster, ghost)

	if len(visible) != 0 {
		t.Fatalf("expected empty roster for unknown requester, got %d users", len(visible))
	}
}

func TestVisibleWorkoutsScopesByRole(t *testing.T) {
	sessions := []models.WorkoutSession{
		{ID: "w1", UserID: "u_mem_1", BranchID: "b_nyc_01"},
		{ID: "w2", UserID: "u_mem_2", BranchID: "b_nyc_01"},
		{ID: "w3", UserID: "u_mem_3", BranchID: "b_la_01"},
	}

	admin := models.User{ID: "u_admin_1", Role: models.RoleAdmin, BranchID: "b_nyc_01"}
	if got := len(VisibleWorkouts(sessions, admin)); got != 3 {
		t.Fatalf("expected admin to see 3 sessions, got %d", got)
	}

	coach := models.User{ID: "u_coach_1", Role: models.RoleCoach, BranchID: "b_nyc_01"}
	if got := len(VisibleWorkouts(sessions, coach)); got != 2 {
		t.Fatalf("expected coach to see 2 sessions, got %d", got)
	}

	member := models.User{ID: "u_mem_3", Role: models.RoleMember, BranchID: "b_la_01"}
	memberSessions := VisibleWorkouts(sessions, member)
	if len(memberSessions) != 1 || memberSessions[0].ID != "w3" {
		t.Fatalf("expected member to see only w3, got %v", memberSessions)
	}
}
