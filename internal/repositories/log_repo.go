package repositories

import (
	"context"

	"hotelhub/internal/models"
)

type LogRepository interface {
	Create(ctx context.Context, entry *models.LogEntry) error
	// ListRecent returns the tenant's newest entries first. Logs are
	// append-only; there are no update or delete operations.
	ListRecent(ctx context.Context, hotelName string, limit int) ([]*models.LogEntry, error)
}

type logRepo struct {
	db Database
}

func NewLogRepo(db Database) LogRepository {
	return &logRepo{db: db}
}

func (r *logRepo) Create(ctx context.Context, entry *models.LogEntry) error {
	query := `
		INSERT INTO logs (id, hotel_name, action, entity_type, entity_id, message, user_name, user_role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`
	_, err := r.db.Exec(ctx, query, entry.ID, entry.HotelName, entry.Action, entry.EntityType, entry.EntityID, entry.Message, entry.UserName, entry.UserRole)
	return err
}

func (r *logRepo) ListRecent(ctx context.Context, hotelName string, limit int) ([]*models.LogEntry, error) {
	query := `
		SELECT id, hotel_name, action, entity_type, entity_id, message, user_name, user_role, created_at
		FROM logs
		WHERE hotel_name = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, hotelName, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.LogEntry
	for rows.Next() {
		entry := &models.LogEntry{}
		if err := rows.Scan(&entry.ID, &entry.HotelName, &entry.Action, &entry.EntityType, &entry.EntityID, &entry.Message, &entry.UserName, &entry.UserRole, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
