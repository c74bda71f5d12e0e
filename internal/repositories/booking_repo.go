package repositories

import (
	"context"
	"time"

	"hotelhub/internal/models"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, hotelName string, id uuid.UUID) (*models.Booking, error)
	// List returns the tenant's bookings newest first, each with its room
	// joined inline. A limit of zero or less returns every booking.
	List(ctx context.Context, hotelName string, limit int) ([]*models.Booking, error)
	UpdatePayment(ctx context.Context, hotelName string, id uuid.UUID, isPaid bool) error
	UpdateStatus(ctx context.Context, hotelName string, id uuid.UUID, status string) error
	SetIDProofObject(ctx context.Context, hotelName string, id uuid.UUID, objectName string) error
	CountActive(ctx context.Context, hotelName string) (int, error)
	CountCheckInsBetween(ctx context.Context, hotelName string, start, end time.Time) (int, error)
	CountCheckOutsBetween(ctx context.Context, hotelName string, start, end time.Time) (int, error)
}

type bookingRepo struct {
	db Database
}

func NewBookingRepo(db Database) BookingRepository {
	return &bookingRepo{db: db}
}

const bookingJoinColumns = `
	b.id, b.hotel_name, b.room_id, b.guest_name, b.guest_phone, b.check_in_date, b.check_out_date,
	b.id_proof_type, b.id_proof_number, b.id_proof_object, b.is_paid, b.status, b.created_at, b.updated_at,
	r.id, r.hotel_name, r.room_number, r.room_type, r.cost_per_night, r.amenities, r.status, r.created_at, r.updated_at
`

// scanJoined scans one booking row with its LEFT JOINed room. The room side
// is nullable so a booking survives its room disappearing.
func scanJoined(row interface{ Scan(dest ...any) error }) (*models.Booking, error) {
	b := &models.Booking{}
	var (
		roomID        *uuid.UUID
		roomHotel     *string
		roomNumber    *string
		roomType      *string
		roomCost      *float64
		roomAmenities []string
		roomStatus    *string
		roomCreated   *time.Time
		roomUpdated   *time.Time
	)
	err := row.Scan(
		&b.ID, &b.HotelName, &b.RoomID, &b.GuestName, &b.GuestPhone, &b.CheckInDate, &b.CheckOutDate,
		&b.IDProofType, &b.IDProofNumber, &b.IDProofObject, &b.IsPaid, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		&roomID, &roomHotel, &roomNumber, &roomType, &roomCost, &roomAmenities, &roomStatus, &roomCreated, &roomUpdated,
	)
	if err != nil {
		return nil, err
	}
	if roomID != nil {
		b.Room = &models.Room{
			ID:           *roomID,
			HotelName:    *roomHotel,
			RoomNumber:   *roomNumber,
			RoomType:     *roomType,
			CostPerNight: *roomCost,
			Amenities:    roomAmenities,
			Status:       *roomStatus,
			CreatedAt:    *roomCreated,
			UpdatedAt:    *roomUpdated,
		}
	}
	return b, nil
}

func (r *bookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (id, hotel_name, room_id, guest_name, guest_phone, check_in_date, check_out_date,
			id_proof_type, id_proof_number, id_proof_object, is_paid, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query,
		booking.ID, booking.HotelName, booking.RoomID, booking.GuestName, booking.GuestPhone,
		booking.CheckInDate, booking.CheckOutDate, booking.IDProofType, booking.IDProofNumber,
		booking.IDProofObject, booking.IsPaid, booking.Status)
	return err
}

func (r *bookingRepo) GetByID(ctx context.Context, hotelName string, id uuid.UUID) (*models.Booking, error) {
	query := `
		SELECT ` + bookingJoinColumns + `
		FROM bookings b
		LEFT JOIN rooms r ON r.id = b.room_id
		WHERE b.hotel_name = $1 AND b.id = $2
	`
	return scanJoined(r.db.QueryRow(ctx, query, hotelName, id))
}

func (r *bookingRepo) List(ctx context.Context, hotelName string, limit int) ([]*models.Booking, error) {
	query := `
		SELECT ` + bookingJoinColumns + `
		FROM bookings b
		LEFT JOIN rooms r ON r.id = b.room_id
		WHERE b.hotel_name = $1
		ORDER BY b.created_at DESC
	`
	args := []any{hotelName}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		booking, err := scanJoined(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

func (r *bookingRepo) UpdatePayment(ctx context.Context, hotelName string, id uuid.UUID, isPaid bool) error {
	query := `
		UPDATE bookings
		SET is_paid = $1, updated_at = NOW()
		WHERE hotel_name = $2 AND id = $3
	`
	_, err := r.db.Exec(ctx, query, isPaid, hotelName, id)
	return err
}

func (r *bookingRepo) UpdateStatus(ctx context.Context, hotelName string, id uuid.UUID, status string) error {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = NOW()
		WHERE hotel_name = $2 AND id = $3
	`
	_, err := r.db.Exec(ctx, query, status, hotelName, id)
	return err
}

func (r *bookingRepo) SetIDProofObject(ctx context.Context, hotelName string, id uuid.UUID, objectName string) error {
	query := `
		UPDATE bookings
		SET id_proof_object = $1, updated_at = NOW()
		WHERE hotel_name = $2 AND id = $3
	`
	_, err := r.db.Exec(ctx, query, objectName, hotelName, id)
	return err
}

func (r *bookingRepo) CountActive(ctx context.Context, hotelName string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM bookings WHERE hotel_name = $1 AND status = $2`
	err := r.db.QueryRow(ctx, query, hotelName, models.BookingActive).Scan(&count)
	return count, err
}

func (r *bookingRepo) CountCheckInsBetween(ctx context.Context, hotelName string, start, end time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM bookings WHERE hotel_name = $1 AND check_in_date BETWEEN $2 AND $3`
	err := r.db.QueryRow(ctx, query, hotelName, start, end).Scan(&count)
	return count, err
}

func (r *bookingRepo) CountCheckOutsBetween(ctx context.Context, hotelName string, start, end time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM bookings WHERE hotel_name = $1 AND check_out_date BETWEEN $2 AND $3`
	err := r.db.QueryRow(ctx, query, hotelName, start, end).Scan(&count)
	return count, err
}
