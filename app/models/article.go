package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Article categories form a closed set; the admin UI only offers these.
const (
	CategoryLayanan = "Layanan"
	CategoryProduk  = "Produk"
	CategoryProyek  = "Proyek"
	CategoryBerita  = "Berita"
)

// ArticleCategories lists all valid article categories in display order.
var ArticleCategories = []string{CategoryLayanan, CategoryProduk, CategoryProyek, CategoryBerita}

// Article represents a blog post in the system
type Article struct {
	ID            uint64     `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"type:varchar(255)" json:"title" validate:"required,min=3,max=255"`
	Slug          string     `gorm:"uniqueIndex;type:varchar(255)" json:"slug" validate:"required,min=3,max=255"`
	Content       string     `gorm:"type:text" json:"content"`
	Excerpt       string     `gorm:"type:varchar(160)" json:"excerpt" validate:"max=160"`
	FeaturedImage string     `gorm:"type:varchar(500)" json:"featured_image"`
	Author        string     `gorm:"type:varchar(150)" json:"author" validate:"required,min=2,max=150"`
	Status        string     `gorm:"type:varchar(20);default:'draft';index" json:"status" validate:"oneof=draft published"`
	Category      string     `gorm:"type:varchar(50);index" json:"category" validate:"oneof=Layanan Produk Proyek Berita"`
	PublishedAt   *time.Time `gorm:"type:timestamp;default:null;index" json:"published_at"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Article model
func (Article) TableName() string {
	return "articles"
}

// IsPublished reports whether the article is visible on the public site.
func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished
}

func (a *Article) Validate() error {
	v := validator.New()

	return v.Struct(a)
}

// IsValidCategory checks a category value against the closed set.
func IsValidCategory(category string) bool {
	for _, c := range ArticleCategories {
		if c == category {
			return true
		}
	}
	return false
}
