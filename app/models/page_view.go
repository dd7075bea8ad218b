package models

import "time"

// PageView is an append-only analytics fact. Rows are never mutated or
// deleted; the dashboard only aggregates counts.
type PageView struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	URL       string    `gorm:"type:varchar(500);index" json:"url"`
	UserAgent string    `gorm:"type:varchar(500)" json:"user_agent"`
	Referrer  string    `gorm:"type:varchar(500)" json:"referrer"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName specifies the table name for the PageView model
func (PageView) TableName() string {
	return "page_views"
}
