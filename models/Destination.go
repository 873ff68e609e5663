package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Destination struct {
	gorm.Model
	Name      string  `json:"name"`
	Slug      string  `json:"slug" gorm:"uniqueIndex;size:160"`
	Country   string  `json:"country" gorm:"index;size:80"`
	Region    string  `json:"region" gorm:"size:120"`
	ShortDesc string  `json:"short_desc" gorm:"type:text"`
	LongDesc  string  `json:"long_desc" gorm:"type:text"`
	PriceFrom int     `json:"price_from"`
	PriceTo   int     `json:"price_to"`
	Currency  string  `json:"currency" gorm:"size:8;default:'SEK'"`
	Lat       float32 `json:"lat"`
	Lng       float32 `json:"lng"`

	Images     string         `json:"images"`    // JSON array of URLs
	Amenities  string         `json:"amenities"` // JSON array of strings
	Highlights datatypes.JSON `json:"highlights" gorm:"type:jsonb"`
	Courses    datatypes.JSON `json:"courses" gorm:"type:jsonb"`
	Packages   datatypes.JSON `json:"packages" gorm:"type:jsonb"`

	Featured  bool  `json:"featured" gorm:"default:false;index"`
	Published *bool `json:"published" gorm:"default:true;index"`

	// Set by the search ranker, never stored
	RelevanceScore int `json:"relevance_score" gorm:"-"`
}

// Course descriptor kept inside Destination.Courses
type Course struct {
	CourseName   string `json:"course_name"`
	Par          int    `json:"par"`
	LengthMeters int    `json:"length_meters"`
	Difficulty   string `json:"difficulty"`  // Easy, Medium, Hard, Championship
	CourseType   string `json:"course_type"` // Links, Parkland, Desert, Mountain, Coastal, Highland
	Holes        int    `json:"holes"`
}

// Package offer kept inside Destination.Packages
type PackageOffer struct {
	Name          string `json:"name"`
	Nights        int    `json:"nights"`
	Rounds        int    `json:"rounds"`
	PricePerson   int    `json:"price_person"`
	Accommodation string `json:"accommodation"` // Luxury, Mid-range, Budget
	Board         string `json:"board"`
}

// Custom JSON marshaling to convert Images and Amenities strings to arrays
func (d *Destination) MarshalJSON() ([]byte, error) {
	type Alias Destination
	aux := &struct {
		Images    []string `json:"images"`
		Amenities []string `json:"amenities"`
		*Alias
	}{
		Images:    []string{},
		Amenities: []string{},
		Alias:     (*Alias)(d),
	}

	if d.Images != "" {
		var images []string
		if err := json.Unmarshal([]byte(d.Images), &images); err == nil {
			aux.Images = images
		}
	}

	if d.Amenities != "" {
		var amenities []string
		if err := json.Unmarshal([]byte(d.Amenities), &amenities); err == nil {
			aux.Amenities = amenities
		}
	}

	return json.Marshal(aux)
}

// ImageList returns the decoded image URLs.
func (d *Destination) ImageList() []string {
	var images []string
	if d.Images != "" {
		json.Unmarshal([]byte(d.Images), &images)
	}
	return images
}

// CourseList returns the decoded course descriptors.
func (d *Destination) CourseList() []Course {
	var courses []Course
	if d.Courses != nil {
		json.Unmarshal(d.Courses, &courses)
	}
	return courses
}

// PackageList returns the decoded package offers.
func (d *Destination) PackageList() []PackageOffer {
	var packages []PackageOffer
	if d.Packages != nil {
		json.Unmarshal(d.Packages, &packages)
	}
	return packages
}

// HighlightList returns the decoded highlight strings.
func (d *Destination) HighlightList() []string {
	var highlights []string
	if d.Highlights != nil {
		json.Unmarshal(d.Highlights, &highlights)
	}
	return highlights
}

func (d *Destination) IsPublished() bool {
	return d.Published == nil || *d.Published
}
