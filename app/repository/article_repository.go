package repository

import (
	"context"

	"github.com/juanrengga/seido-web/app/models"
	"gorm.io/gorm"
)

// articleRepository implements the ArticleRepository interface
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository instance
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// Create creates a new article in the database
func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

// GetByID retrieves an article by its ID, drafts included (admin use)
func (r *articleRepository) GetByID(ctx context.Context, id uint64) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetPublishedBySlug retrieves a published article by slug. The status
// filter is part of the query so a guessed draft URL returns not-found
// instead of leaking unpublished content.
func (r *articleRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).
		Where("slug = ? AND status = ?", slug, models.StatusPublished).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetPublished retrieves one page of published articles, newest publish
// first, optionally filtered by category, plus the exact total for
// page-count computation.
func (r *articleRepository) GetPublished(ctx context.Context, page, pageSize int, category string) ([]models.Article, int64, error) {
	offset, limit := Window(page, pageSize)

	query := r.db.WithContext(ctx).Model(&models.Article{}).Where("status = ?", models.StatusPublished)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	err := query.Order("published_at DESC").Offset(offset).Limit(limit).Find(&articles).Error
	return articles, total, err
}

// GetRecentPublished retrieves the newest published articles for the
// featured grid (1 main + side posts)
func (r *articleRepository) GetRecentPublished(ctx context.Context, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).Where("status = ?", models.StatusPublished).
		Order("published_at DESC").Limit(limit).Find(&articles).Error
	return articles, err
}

// GetAll retrieves every article, drafts included (admin listing)
func (r *articleRepository) GetAll(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&articles).Error
	return articles, err
}

// Update updates an existing article in the database
func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

// Delete permanently removes an article by its ID
func (r *articleRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&models.Article{}, id).Error
}

// Count returns the total number of articles
func (r *articleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Article{}).Count(&count).Error
	return count, err
}

// SlugExists checks if a slug already exists
func (r *articleRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Article{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks if a slug exists excluding a specific ID
func (r *articleRepository) SlugExistsExceptID(ctx context.Context, slug string, id uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Article{}).
		Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}
