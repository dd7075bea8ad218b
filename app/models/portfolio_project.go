package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// CategoryPartnership is the reserved category marker: projects carrying it
// are also shown as trusted partners on the public site.
const CategoryPartnership = "Partnership"

// MaxProjectImages caps the image list of a single project.
const MaxProjectImages = 10

// ImageList stores an ordered list of image URLs as a JSON column.
// The first entry is the representative thumbnail.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	return json.Marshal(l)
}

func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = ImageList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for ImageList: %T", value)
	}
}

// PortfolioProject represents a completed engagement or a partnership entry
type PortfolioProject struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255)" json:"title" validate:"required,min=2,max=255"`
	Category    string    `gorm:"type:varchar(100);index" json:"category" validate:"required,min=2,max=100"`
	Description string    `gorm:"type:text" json:"description"`
	Images      ImageList `gorm:"type:json" json:"images"`
	AIHint      string    `gorm:"type:varchar(255)" json:"ai_hint"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the PortfolioProject model
func (PortfolioProject) TableName() string {
	return "portfolio_projects"
}

// IsPartner reports whether this entry doubles as a partner listing.
func (p *PortfolioProject) IsPartner() bool {
	return p.Category == CategoryPartnership
}

// Thumbnail returns the representative image, or empty if none uploaded.
func (p *PortfolioProject) Thumbnail() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

func (p *PortfolioProject) Validate() error {
	if len(p.Images) > MaxProjectImages {
		return fmt.Errorf("a project can hold at most %d images", MaxProjectImages)
	}
	v := validator.New()

	return v.Struct(p)
}
