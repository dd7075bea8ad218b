package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	MessageStatusUnread  = "unread"
	MessageStatusRead    = "read"
	MessageStatusReplied = "replied"
)

// ContactMessage represents one inbound inquiry from a site visitor
type ContactMessage struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	Email     string    `gorm:"type:varchar(200)" json:"email" validate:"required,email,max=200"`
	Subject   string    `gorm:"type:varchar(255)" json:"subject" validate:"required,min=2,max=255"`
	Message   string    `gorm:"type:text" json:"message" validate:"required"`
	Status    string    `gorm:"type:varchar(20);default:'unread';index" json:"status"`
	Replies   []Reply   `gorm:"foreignKey:MessageID" json:"replies,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the ContactMessage model
func (ContactMessage) TableName() string {
	return "contact_messages"
}

func (m *ContactMessage) Validate() error {
	v := validator.New()

	return v.Struct(m)
}

// messageStatusRank orders the forward-only status progression.
var messageStatusRank = map[string]int{
	MessageStatusUnread:  0,
	MessageStatusRead:    1,
	MessageStatusReplied: 2,
}

// CanTransitionTo reports whether a status change moves forward through
// unread -> read -> replied. Backward moves are rejected.
func (m *ContactMessage) CanTransitionTo(status string) bool {
	to, ok := messageStatusRank[status]
	if !ok {
		return false
	}
	from, ok := messageStatusRank[m.Status]
	if !ok {
		return false
	}
	return to > from
}
