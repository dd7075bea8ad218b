package repository

import (
	"context"

	"github.com/juanrengga/seido-web/app/models"
	"gorm.io/gorm"
)

// pageViewRepository implements the PageViewRepository interface
type pageViewRepository struct {
	db *gorm.DB
}

// NewPageViewRepository creates a new page view repository instance
func NewPageViewRepository(db *gorm.DB) PageViewRepository {
	return &pageViewRepository{db: db}
}

// Record appends one page view. There is no update or delete path.
func (r *pageViewRepository) Record(ctx context.Context, view *models.PageView) error {
	return r.db.WithContext(ctx).Create(view).Error
}

// Count returns the total number of recorded views
func (r *pageViewRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PageView{}).Count(&count).Error
	return count, err
}

// CountByURL returns the most viewed URLs for the dashboard widget
func (r *pageViewRepository) CountByURL(ctx context.Context, limit int) ([]URLCount, error) {
	var rows []URLCount
	err := r.db.WithContext(ctx).Model(&models.PageView{}).
		Select("url, COUNT(*) as count").
		Group("url").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
