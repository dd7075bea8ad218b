package repository

import (
	"context"
	"fmt"

	"github.com/juanrengga/seido-web/app/models"
	"gorm.io/gorm"
)

// messageRepository implements the MessageRepository interface
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository instance
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create stores a new inbound message. Status always starts at unread, no
// matter what the caller set.
func (r *messageRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	msg.Status = models.MessageStatusUnread
	return r.db.WithContext(ctx).Create(msg).Error
}

// GetByID retrieves a message with its replies
func (r *messageRepository) GetByID(ctx context.Context, id uint64) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	err := r.db.WithContext(ctx).Preload("Replies").First(&msg, id).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// GetAll retrieves all messages, newest first
func (r *messageRepository) GetAll(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := r.db.WithContext(ctx).Preload("Replies").Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// GetByStatus retrieves messages in one inbox tab, newest first
func (r *messageRepository) GetByStatus(ctx context.Context, status string) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := r.db.WithContext(ctx).Preload("Replies").Where("status = ?", status).
		Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// UpdateStatus moves a message forward through unread -> read -> replied.
// Backward transitions are rejected.
func (r *messageRepository) UpdateStatus(ctx context.Context, id uint64, status string) error {
	db := r.db.WithContext(ctx)

	var msg models.ContactMessage
	if err := db.First(&msg, id).Error; err != nil {
		return err
	}

	if !msg.CanTransitionTo(status) {
		return fmt.Errorf("invalid status transition %s -> %s", msg.Status, status)
	}

	return db.Model(&msg).Update("status", status).Error
}

// AddReply stores a reply and marks the parent as replied in one
// transaction, so a reply never exists on a message still shown as unread.
func (r *messageRepository) AddReply(ctx context.Context, msgID uint64, body string) (*models.Reply, error) {
	reply := &models.Reply{
		MessageID: msgID,
		Body:      body,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var msg models.ContactMessage
		if err := tx.First(&msg, msgID).Error; err != nil {
			return err
		}

		if err := tx.Create(reply).Error; err != nil {
			return err
		}

		if msg.Status != models.MessageStatusReplied {
			if err := tx.Model(&msg).Update("status", models.MessageStatusReplied).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return reply, nil
}

// CountUnread returns the number of unread messages
func (r *messageRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ContactMessage{}).
		Where("status = ?", models.MessageStatusUnread).Count(&count).Error
	return count, err
}
