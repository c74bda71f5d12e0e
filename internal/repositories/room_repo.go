package repositories

import (
	"context"

	"hotelhub/internal/models"

	"github.com/google/uuid"
)

type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	// GetByID is tenant-scoped: a valid id belonging to another tenant
	// behaves exactly like a missing row.
	GetByID(ctx context.Context, hotelName string, id uuid.UUID) (*models.Room, error)
	GetByNumber(ctx context.Context, hotelName, roomNumber string) (*models.Room, error)
	List(ctx context.Context, hotelName string) ([]*models.Room, error)
	UpdateStatus(ctx context.Context, hotelName string, id uuid.UUID, status string) error
	CountByStatus(ctx context.Context, hotelName string) (map[string]int, error)
}

type roomRepo struct {
	db Database
}

func NewRoomRepo(db Database) RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) Create(ctx context.Context, room *models.Room) error {
	query := `
		INSERT INTO rooms (id, hotel_name, room_number, room_type, cost_per_night, amenities, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, room.ID, room.HotelName, room.RoomNumber, room.RoomType, room.CostPerNight, room.Amenities, room.Status)
	return err
}

func (r *roomRepo) GetByID(ctx context.Context, hotelName string, id uuid.UUID) (*models.Room, error) {
	room := &models.Room{}
	query := `
		SELECT id, hotel_name, room_number, room_type, cost_per_night, amenities, status, created_at, updated_at
		FROM rooms
		WHERE hotel_name = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, hotelName, id).Scan(&room.ID, &room.HotelName, &room.RoomNumber, &room.RoomType, &room.CostPerNight, &room.Amenities, &room.Status, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return room, nil
}

func (r *roomRepo) GetByNumber(ctx context.Context, hotelName, roomNumber string) (*models.Room, error) {
	room := &models.Room{}
	query := `
		SELECT id, hotel_name, room_number, room_type, cost_per_night, amenities, status, created_at, updated_at
		FROM rooms
		WHERE hotel_name = $1 AND room_number = $2
	`
	err := r.db.QueryRow(ctx, query, hotelName, roomNumber).Scan(&room.ID, &room.HotelName, &room.RoomNumber, &room.RoomType, &room.CostPerNight, &room.Amenities, &room.Status, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return room, nil
}

func (r *roomRepo) List(ctx context.Context, hotelName string) ([]*models.Room, error) {
	query := `
		SELECT id, hotel_name, room_number, room_type, cost_per_night, amenities, status, created_at, updated_at
		FROM rooms
		WHERE hotel_name = $1
		ORDER BY room_number ASC
	`
	rows, err := r.db.Query(ctx, query, hotelName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		room := &models.Room{}
		if err := rows.Scan(&room.ID, &room.HotelName, &room.RoomNumber, &room.RoomType, &room.CostPerNight, &room.Amenities, &room.Status, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (r *roomRepo) UpdateStatus(ctx context.Context, hotelName string, id uuid.UUID, status string) error {
	query := `
		UPDATE rooms
		SET status = $1, updated_at = NOW()
		WHERE hotel_name = $2 AND id = $3
	`
	_, err := r.db.Exec(ctx, query, status, hotelName, id)
	return err
}

func (r *roomRepo) CountByStatus(ctx context.Context, hotelName string) (map[string]int, error) {
	query := `
		SELECT status, COUNT(*)
		FROM rooms
		WHERE hotel_name = $1
		GROUP BY status
	`
	rows, err := r.db.Query(ctx, query, hotelName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
