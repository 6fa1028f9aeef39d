package database

import (
	"gorm.io/gorm"
)

// News is a single published news card. Body may contain HTML and is
// rendered as-is on the detail page.
type News struct {
	gorm.Model
	Title string `gorm:"size:100"`
	Tags  string `gorm:"size:100"`
	Image string `gorm:"size:50"`
	Body  string `gorm:"type:text"`
}
