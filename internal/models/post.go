package models

import "time"

// CommunityPost is visible only inside its branch, regardless of the
// reader's role. Posts are append-only except for the like counter.
type CommunityPost struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	AuthorID  string    `gorm:"not null;index" json:"authorId"`
	BranchID  string    `gorm:"not null;index" json:"branchId"`
	Content   string    `gorm:"not null" json:"content"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"-"`
}
