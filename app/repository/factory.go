package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Repositories bundles every repository instance
type Repositories struct {
	Article   ArticleRepository
	Portfolio PortfolioRepository
	Message   MessageRepository
	PageView  PageViewRepository
	User      UserRepository
}

// NewRepositories creates all repositories backed by the same DB handle
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Article:   NewArticleRepository(db),
		Portfolio: NewPortfolioRepository(db),
		Message:   NewMessageRepository(db),
		PageView:  NewPageViewRepository(db),
		User:      NewUserRepository(db),
	}
}

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetArticleRepository returns the article repository instance
func (f *Factory) GetArticleRepository() ArticleRepository {
	return f.GetRepositories().Article
}

// GetPortfolioRepository returns the portfolio repository instance
func (f *Factory) GetPortfolioRepository() PortfolioRepository {
	return f.GetRepositories().Portfolio
}

// GetMessageRepository returns the message repository instance
func (f *Factory) GetMessageRepository() MessageRepository {
	return f.GetRepositories().Message
}

// GetPageViewRepository returns the page view repository instance
func (f *Factory) GetPageViewRepository() PageViewRepository {
	return f.GetRepositories().PageView
}

// GetUserRepository returns the user repository instance
func (f *Factory) GetUserRepository() UserRepository {
	return f.GetRepositories().User
}

var globalFactory *Factory

// InitGlobalFactory wires the factory used by controllers
func InitGlobalFactory(db *gorm.DB) {
	globalFactory = NewFactory(db)
}

// GetGlobalFactory returns the process-wide factory
func GetGlobalFactory() *Factory {
	return globalFactory
}
