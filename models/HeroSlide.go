package models

import "gorm.io/gorm"

// HeroSlide is one slide of the landing page carousel.
type HeroSlide struct {
	gorm.Model
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Kicker        string `json:"kicker" gorm:"size:120"`
	Image         string `json:"image"`
	DestinationID *uint  `json:"destinationID"`
	CTAText       string `json:"ctaText" gorm:"size:60"`
	CTAURL        string `json:"ctaURL"`
	Order         int    `json:"order" gorm:"column:sort_order;default:0"`
	Active        bool   `json:"active" gorm:"default:true;index"`
}
