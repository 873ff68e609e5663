package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"golftrip-server/models"
	"golftrip-server/storage"
)

// ProcessPendingExports collects the data bundle for each pending export
// request and marks it completed. Runs from the scheduler.
func ProcessPendingExports() {
	var requests []models.DataExportRequest
	if err := storage.DB.Where("status = ?", models.GDPRRequestPending).Find(&requests).Error; err != nil {
		log.Printf("gdpr export: failed to list pending requests: %v", err)
		return
	}

	for i := range requests {
		request := &requests[i]
		storage.DB.Model(request).Update("status", models.GDPRRequestProcessing)

		bundle, err := buildExportBundle(request.UserID)
		if err != nil {
			log.Printf("gdpr export %d: %v", request.ID, err)
			storage.DB.Model(request).Update("status", models.GDPRRequestFailed)
			continue
		}

		now := time.Now()
		request.Status = models.GDPRRequestCompleted
		request.ExportJSON = bundle
		request.CompletedAt = &now
		if err := storage.DB.Save(request).Error; err != nil {
			log.Printf("gdpr export %d: save failed: %v", request.ID, err)
		}
	}
}

func buildExportBundle(userID uint) (string, error) {
	var user models.User
	if err := storage.DB.First(&user, userID).Error; err != nil {
		return "", fmt.Errorf("user %d not found: %w", userID, err)
	}

	var profile models.UserProfile
	storage.DB.Where("user_id = ?", userID).First(&profile)

	var bookings []models.Booking
	storage.DB.Preload("Items").Where("user_id = ?", userID).Find(&bookings)

	var consents []models.ConsentRecord
	storage.DB.Where("user_id = ?", userID).Order("created_at ASC").Find(&consents)

	bundle := map[string]interface{}{
		"exported_at": time.Now().UTC().Format(time.RFC3339),
		"user":        &user,
		"profile":     profile,
		"bookings":    bookings,
		"consents":    consents,
	}

	out, err := json.Marshal(bundle)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ProcessPendingDeletions anonymizes bookings and removes the user record
// for each pending deletion request. Consent and audit rows are kept for
// their own retention periods.
func ProcessPendingDeletions() {
	var requests []models.DataDeletionRequest
	if err := storage.DB.Where("status = ?", models.GDPRRequestPending).Find(&requests).Error; err != nil {
		log.Printf("gdpr deletion: failed to list pending requests: %v", err)
		return
	}

	for i := range requests {
		request := &requests[i]
		storage.DB.Model(request).Update("status", models.GDPRRequestProcessing)

		if err := anonymizeUser(request.UserID); err != nil {
			log.Printf("gdpr deletion %d: %v", request.ID, err)
			storage.DB.Model(request).Update("status", models.GDPRRequestFailed)
			continue
		}

		now := time.Now()
		request.Status = models.GDPRRequestCompleted
		request.ProcessedAt = &now
		if err := storage.DB.Save(request).Error; err != nil {
			log.Printf("gdpr deletion %d: save failed: %v", request.ID, err)
		}
	}
}

func anonymizeUser(userID uint) error {
	// Bookings stay for financial records, stripped of personal data.
	err := storage.DB.Model(&models.Booking{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"customer_name":  "deleted",
		"customer_email": fmt.Sprintf("deleted-%d@redacted.invalid", userID),
		"customer_phone": "",
	}).Error
	if err != nil {
		return fmt.Errorf("anonymize bookings: %w", err)
	}

	if err := storage.DB.Where("user_id = ?", userID).Delete(&models.UserProfile{}).Error; err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	if err := storage.DB.Delete(&models.User{}, userID).Error; err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}

// SweepExpiredAuditLogs hard-deletes audit rows past their per-action
// retention period. Runs daily from the scheduler.
func SweepExpiredAuditLogs() {
	result := storage.DB.
		Where("created_at < NOW() - (retention_days || ' days')::interval").
		Delete(&models.AuditLog{})
	if result.Error != nil {
		log.Printf("audit sweep failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("audit sweep removed %d expired rows", result.RowsAffected)
	}
}
