package models

import "gorm.io/gorm"

// Testimonial is a guest review shown on the landing page. TripDate is a
// free-form label ("May 2026"), not a timestamp.
type Testimonial struct {
	gorm.Model
	Name          string `json:"name" gorm:"size:120"`
	Rating        int    `json:"rating"`
	Content       string `json:"content" gorm:"type:text"`
	DestinationID *uint  `json:"destinationID"`
	TripDate      string `json:"tripDate" gorm:"size:40"`
	Published     bool   `json:"published" gorm:"default:true;index"`
}
