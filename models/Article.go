package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Article is a travel report tied to zero or more destinations.
type Article struct {
	gorm.Model
	Title          string         `json:"title"`
	Slug           string         `json:"slug" gorm:"uniqueIndex;size:160"`
	Content        string         `json:"content" gorm:"type:text"`
	Excerpt        string         `json:"excerpt" gorm:"type:text"`
	Category       string         `json:"category" gorm:"size:60;index"`
	Author         string         `json:"author" gorm:"size:120"`
	Image          string         `json:"image"`
	DestinationIDs datatypes.JSON `json:"destinationIDs"`
	Published      bool           `json:"published" gorm:"default:true;index"`
	PublishDate    time.Time      `json:"publishDate"`
}
