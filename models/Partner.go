package models

import "gorm.io/gorm"

// Partner is a logo-wall entry: an insurer, charity or course operator the
// site links out to.
type Partner struct {
	gorm.Model
	Name        string `json:"name" gorm:"size:160"`
	Type        string `json:"type" gorm:"size:60;index"`
	Logo        string `json:"logo"`
	Description string `json:"description" gorm:"type:text"`
	URL         string `json:"url"`
	Order       int    `json:"order" gorm:"column:sort_order;default:0"`
	Active      bool   `json:"active" gorm:"default:true;index"`
}
