package services

import (
	"context"
	"fmt"
	"log"

	"hotelhub/internal/models"
	"hotelhub/internal/repositories"

	"github.com/google/uuid"
)

// Logs are capped at the newest 200 entries per tenant when viewed.
const logViewLimit = 200

// AuditService records append-only log entries emitted by the other
// services after successful mutations.
type AuditService interface {
	// Record writes a log entry. A failed write never fails the mutation
	// that triggered it; the error is logged server-side and swallowed.
	Record(ctx context.Context, hotelName, action, entityType string, entityID uuid.UUID, message string, actor *models.User)
	Recent(ctx context.Context, hotelName string) ([]*models.LogEntry, error)
}

type auditService struct {
	logRepo repositories.LogRepository
}

func NewAuditService(logRepo repositories.LogRepository) AuditService {
	return &auditService{logRepo: logRepo}
}

func (s *auditService) Record(ctx context.Context, hotelName, action, entityType string, entityID uuid.UUID, message string, actor *models.User) {
	entry := &models.LogEntry{
		ID:         uuid.New(),
		HotelName:  hotelName,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID.String(),
		Message:    message,
		UserName:   "System",
	}
	if actor != nil {
		entry.UserName = actor.Name
		entry.UserRole = actor.Role
	}

	if err := s.logRepo.Create(ctx, entry); err != nil {
		log.Printf("AUDIT LOG ERROR: failed to record %s for %s %s: %v", action, entityType, entityID, err)
	}
}

func (s *auditService) Recent(ctx context.Context, hotelName string) ([]*models.LogEntry, error) {
	entries, err := s.logRepo.ListRecent(ctx, hotelName, logViewLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logs: %w", err)
	}
	return entries, nil
}
