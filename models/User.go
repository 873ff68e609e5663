package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName           string         `json:"firstName"`
	LastName            string         `json:"lastName"`
	Email               string         `json:"email" gorm:"uniqueIndex"`
	PhoneNumber         string         `json:"phoneNumber"`
	Password            string         `json:"-"`
	AvatarURL           string         `json:"avatarURL"`
	Country             string         `json:"country" gorm:"size:80"`
	SavedDestinations   datatypes.JSON `json:"savedDestinations"`
	AllowsNotifications *bool          `json:"allowsNotifications"`
	IsActive            *bool          `json:"isActive" gorm:"default:true"`
	Role                string         `json:"role" gorm:"type:varchar(20);default:user;index"` // user, admin, super_admin
	LastLoginAt         *time.Time     `json:"lastLoginAt"`

	Profile *UserProfile `json:"profile,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

// Custom JSON marshaling to expose SavedDestinations as an array
func (u *User) MarshalJSON() ([]byte, error) {
	type Alias User
	aux := &struct {
		SavedDestinations []int `json:"savedDestinations"`
		*Alias
	}{
		SavedDestinations: []int{},
		Alias:             (*Alias)(u),
	}

	if u.SavedDestinations != nil {
		var saved []int
		if err := json.Unmarshal(u.SavedDestinations, &saved); err == nil {
			aux.SavedDestinations = saved
		}
	}

	return json.Marshal(aux)
}
