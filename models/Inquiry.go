package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	InquiryStatusNew        = "new"
	InquiryStatusInProgress = "in_progress"
	InquiryStatusClosed     = "closed"
)

type Inquiry struct {
	gorm.Model
	Name          string         `json:"name"`
	Email         string         `json:"email" gorm:"index"`
	Phone         string         `json:"phone"`
	DestinationID *uint          `json:"destinationID" gorm:"index"`
	Message       string         `json:"message" gorm:"type:text"`
	Status        string         `json:"status" gorm:"size:20;default:'new';index"`
	Notes         datatypes.JSON `json:"notes"`
}
