package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SiteSetting is a keyed blob of site-wide configuration the admin panel
// edits, e.g. contact details or the announcement banner.
type SiteSetting struct {
	gorm.Model
	Key   string         `json:"key" gorm:"uniqueIndex;size:120"`
	Value datatypes.JSON `json:"value"`
}
