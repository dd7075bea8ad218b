package repository

import (
	"context"

	"github.com/juanrengga/seido-web/app/models"
)

// ArticleRepository defines the interface for blog article operations.
// Listing methods that serve the public site only ever return published
// rows; draft access goes through the admin-only methods. Every method
// takes the caller's context so read deadlines reach the database.
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id uint64) (*models.Article, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error)
	GetPublished(ctx context.Context, page, pageSize int, category string) ([]models.Article, int64, error)
	GetRecentPublished(ctx context.Context, limit int) ([]models.Article, error)
	GetAll(ctx context.Context) ([]models.Article, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	SlugExistsExceptID(ctx context.Context, slug string, id uint64) (bool, error)
}

// PortfolioRepository defines the interface for portfolio project operations
type PortfolioRepository interface {
	Create(ctx context.Context, project *models.PortfolioProject) error
	GetByID(ctx context.Context, id uint64) (*models.PortfolioProject, error)
	GetProjects(ctx context.Context) ([]models.PortfolioProject, error)
	GetPartners(ctx context.Context) ([]models.PortfolioProject, error)
	Update(ctx context.Context, project *models.PortfolioProject) error
	Delete(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)
}

// MessageRepository defines the interface for the contact inbox
type MessageRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	GetByID(ctx context.Context, id uint64) (*models.ContactMessage, error)
	GetAll(ctx context.Context) ([]models.ContactMessage, error)
	GetByStatus(ctx context.Context, status string) ([]models.ContactMessage, error)
	UpdateStatus(ctx context.Context, id uint64, status string) error
	AddReply(ctx context.Context, msgID uint64, body string) (*models.Reply, error)
	CountUnread(ctx context.Context) (int64, error)
}

// PageViewRepository defines the interface for the append-only analytics log
type PageViewRepository interface {
	Record(ctx context.Context, view *models.PageView) error
	Count(ctx context.Context) (int64, error)
	CountByURL(ctx context.Context, limit int) ([]URLCount, error)
}

// UserRepository defines the interface for admin staff accounts
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// URLCount is one row of the popular-pages dashboard widget
type URLCount struct {
	URL   string `json:"url"`
	Count int64  `json:"count"`
}
