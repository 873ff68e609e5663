package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserProfile holds the travel preferences that drive search ranking and
// recommendations.
type UserProfile struct {
	gorm.Model
	UserID uint `json:"userID" gorm:"uniqueIndex"`

	BudgetMin               int            `json:"budgetMin" gorm:"default:0"`
	BudgetMax               int            `json:"budgetMax" gorm:"default:50000"`
	PreferredCountries      datatypes.JSON `json:"preferredCountries"`
	PlayingLevel            string         `json:"playingLevel" gorm:"size:20;default:'Intermediate'"` // Beginner, Intermediate, Advanced, Professional
	AccommodationPreference string         `json:"accommodationPreference" gorm:"size:20;default:'Any'"`
	TripDurationDays        *int           `json:"tripDurationDays"`
	GroupSize               *int           `json:"groupSize"`
	Handicap                *int           `json:"handicap"`

	PreferredTravelMonths datatypes.JSON `json:"preferredTravelMonths"`
	PreviousDestinations  datatypes.JSON `json:"previousDestinations"`
	DietaryRequirements   string         `json:"dietaryRequirements"`
	SpecialRequests       string         `json:"specialRequests" gorm:"type:text"`

	ConversationSummary string `json:"conversationSummary" gorm:"type:text"`
	KYCCompleted        bool   `json:"kycCompleted" gorm:"default:false"`
	Tier                int    `json:"tier" gorm:"default:0"` // 0-3 by profile completeness
}

// PreferredCountryList returns the decoded preferred countries.
func (p *UserProfile) PreferredCountryList() []string {
	var countries []string
	if p.PreferredCountries != nil {
		json.Unmarshal(p.PreferredCountries, &countries)
	}
	return countries
}
