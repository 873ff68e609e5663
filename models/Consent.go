package models

import (
	"time"

	"gorm.io/gorm"
)

// ConsentRecord stores one consent decision. Rows are never updated; a
// withdrawal is a new row with Granted=false so the full history is kept.
type ConsentRecord struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"userID" gorm:"index;not null"`
	ConsentType string    `json:"consentType" gorm:"size:40;index"` // marketing, analytics, cookies, data_processing
	Granted     bool      `json:"granted"`
	IPAddress   string    `json:"ipAddress" gorm:"size:64"`
	UserAgent   string    `json:"userAgent" gorm:"size:256"`
	CreatedAt   time.Time `json:"createdAt"`
}

const (
	GDPRRequestPending    = "pending"
	GDPRRequestProcessing = "processing"
	GDPRRequestCompleted  = "completed"
	GDPRRequestFailed     = "failed"
)

type DataExportRequest struct {
	gorm.Model
	UserID      uint       `json:"userID" gorm:"index"`
	Email       string     `json:"email"`
	Status      string     `json:"status" gorm:"size:20;default:'pending';index"`
	ExportJSON  string     `json:"-" gorm:"type:text"`
	CompletedAt *time.Time `json:"completedAt"`
}

type DataDeletionRequest struct {
	gorm.Model
	UserID      uint       `json:"userID" gorm:"index"`
	Email       string     `json:"email"`
	Reason      string     `json:"reason" gorm:"type:text"`
	Status      string     `json:"status" gorm:"size:20;default:'pending';index"`
	ProcessedAt *time.Time `json:"processedAt"`
}
