package models

// LeaderboardEntry is derived per request and never stored.
// FatLossPercentage is the drop in body-fat percentage between a
// member's earliest and latest body log, rounded to one decimal.
type LeaderboardEntry struct {
	UserID            string  `json:"userId"`
	Name              string  `json:"name"`
	AvatarURL         string  `json:"avatarUrl"`
	FatLossPercentage float64 `json:"fatLossPercentage"`
	Rank              int     `json:"rank"`
}
