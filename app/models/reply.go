package models

import "time"

// Reply is one authenticated response to a contact message
type Reply struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	MessageID uint64    `gorm:"index;not null" json:"message_id"`
	Body      string    `gorm:"type:text" json:"body"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the Reply model
func (Reply) TableName() string {
	return "contact_replies"
}
