package models

import (
	"time"
)

// Audit action types recorded for GDPR compliance.
const (
	AuditDataRead   = "data_read"
	AuditDataExport = "data_export"
	AuditDataCreate = "data_create"
	AuditDataUpdate = "data_update"
	AuditDataDelete = "data_delete"

	AuditUserLogin    = "user_login"
	AuditUserRegister = "user_register"

	AuditConsentGiven     = "consent_given"
	AuditConsentWithdrawn = "consent_withdrawn"

	AuditGDPRDataRequest   = "gdpr_data_request"
	AuditGDPRDeleteRequest = "gdpr_delete_request"

	AuditFileUpload = "file_upload"
	AuditFileDelete = "file_delete"

	AuditAdminAccess = "admin_access"
)

type AuditLog struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ActorUserID   uint      `json:"actorUserID" gorm:"index"`
	Action        string    `json:"action" gorm:"size:64;index"`
	ResourceType  string    `json:"resourceType" gorm:"size:64;index"`
	ResourceID    uint      `json:"resourceID" gorm:"index"`
	BeforeJSON    string    `json:"beforeJSON" gorm:"type:text"`
	AfterJSON     string    `json:"afterJSON" gorm:"type:text"`
	IPAddress     string    `json:"ipAddress" gorm:"size:64"`
	UserAgent     string    `json:"userAgent" gorm:"size:256"`
	LegalBasis    string    `json:"legalBasis" gorm:"size:64"`
	RetentionDays int       `json:"retentionDays" gorm:"default:2555"`
	CreatedAt     time.Time `json:"createdAt" gorm:"index"`
}

// AuditRetentionDays maps action types to how long their log rows are kept.
// Defaults to 7 years (2555 days) for anything not listed.
var AuditRetentionDays = map[string]int{
	AuditUserLogin:        365,
	AuditConsentGiven:     1095,
	AuditConsentWithdrawn: 1095,
	AuditFileUpload:       1095,
	AuditFileDelete:       1095,
}
