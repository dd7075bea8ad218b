package repository

import (
	"context"

	"github.com/juanrengga/seido-web/app/models"
	"gorm.io/gorm"
)

// portfolioRepository implements the PortfolioRepository interface
type portfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository creates a new portfolio repository instance
func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

// Create creates a new portfolio project in the database
func (r *portfolioRepository) Create(ctx context.Context, project *models.PortfolioProject) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// GetByID retrieves a portfolio project by its ID
func (r *portfolioRepository) GetByID(ctx context.Context, id uint64) (*models.PortfolioProject, error) {
	var project models.PortfolioProject
	err := r.db.WithContext(ctx).First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetProjects retrieves the public portfolio, excluding partnership entries
func (r *portfolioRepository) GetProjects(ctx context.Context) ([]models.PortfolioProject, error) {
	var projects []models.PortfolioProject
	err := r.db.WithContext(ctx).Where("category != ?", models.CategoryPartnership).
		Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// GetPartners retrieves only partnership-marked entries. The partnership
// marker is the one category value with a second display role; keeping
// both readers behind this repository isolates the overload in one file.
func (r *portfolioRepository) GetPartners(ctx context.Context) ([]models.PortfolioProject, error) {
	var partners []models.PortfolioProject
	err := r.db.WithContext(ctx).Where("category = ?", models.CategoryPartnership).
		Order("created_at DESC").Find(&partners).Error
	return partners, err
}

// Update updates an existing portfolio project in the database
func (r *portfolioRepository) Update(ctx context.Context, project *models.PortfolioProject) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete permanently removes a portfolio project by its ID. Releasing the
// project's images from the asset store is the caller's responsibility and
// happens before this call, best-effort.
func (r *portfolioRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&models.PortfolioProject{}, id).Error
}

// Count returns the total number of portfolio entries
func (r *portfolioRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PortfolioProject{}).Count(&count).Error
	return count, err
}
