package services

import (
	"math"
	"sort"

	"github.com/hypergym/hypergym/internal/models"
)

type LeaderboardUserRepository interface {
	List() ([]models.User, error)
}

type LeaderboardBodyLogRepository interface {
	ListByBranchAscending(branchID string) ([]models.BodyLog, error)
}

type LeaderboardService struct {
	users    LeaderboardUserRepository
	bodyLogs LeaderboardBodyLogRepository
}

func NewLeaderboardService(users LeaderboardUserRepository, bodyLogs LeaderboardBodyLogRepository) *LeaderboardService {
	return &LeaderboardService{users: users, bodyLogs: bodyLogs}
}

// FatLossLeaderboard ranks the members of a branch by body-fat
// percentage lost between their earliest and latest body log. A
// degraded store reads as an empty board.
func (service *LeaderboardService) FatLossLeaderboard(branchID string) ([]models.LeaderboardEntry, error) {
	allUsers, err := service.users.List()
	if err != nil {
		return []models.LeaderboardEntry{}, nil
	}
	logs, err := service.bodyLogs.ListByBranchAscending(branchID)
	if err != nil {
		return []models.LeaderboardEntry{}, nil
	}

	branchMembers := make([]models.User, 0)
	for _, user := range allUsers {
		if user.BranchID == branchID && user.Role == models.RoleMember {
			branchMembers = append(branchMembers, user)
		}
	}

	return BuildFatLossLeaderboard(branchMembers, logs), nil
}

// BuildFatLossLeaderboard computes the board from a branch's members
// and their body logs (oldest first). A member qualifies with at least
// two logs, a body-fat value on both the first and the last, and a
// strictly positive loss; everyone else is excluded, not zero-ranked.
func BuildFatLossLeaderboard(members []models.User, logsAscending []models.BodyLog) []models.LeaderboardEntry {
	logsByUser := make(map[string][]models.BodyLog, len(members))
	for _, bodyLog := range logsAscending {
		logsByUser[bodyLog.UserID] = append(logsByUser[bodyLog.UserID], bodyLog)
	}

	entries := make([]models.LeaderboardEntry, 0)
	for _, member := range members {
		userLogs := logsByUser[member.ID]
		if len(userLogs) < 2 {
			continue
		}
		first := userLogs[0]
		last := userLogs[len(userLogs)-1]
		if first.BodyFatPercentage == nil || last.BodyFatPercentage == nil {
			continue
		}
		loss := *first.BodyFatPercentage - *last.BodyFatPercentage
		if loss <= 0 {
			continue
		}
		entries = append(entries, models.LeaderboardEntry{
			UserID:            member.ID,
			Name:              member.Name,
			AvatarURL:         member.AvatarURL,
			FatLossPercentage: math.Round(loss*10) / 10,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].FatLossPercentage > entries[j].FatLossPercentage
	})
	for index := range entries {
		entries[index].Rank = index + 1
	}
	return entries
}
