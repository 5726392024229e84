package models

// Branch is a physical gym location. Branches are immutable reference
// data and the primary isolation boundary for community posts.
type Branch struct {
	ID            string `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"not null" json:"name"`
	Location      string `gorm:"not null" json:"location"`
	ActiveMembers int    `gorm:"not null;default:0" json:"activeMembers"`
}
