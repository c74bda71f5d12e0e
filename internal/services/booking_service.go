package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"time"

	"hotelhub/internal/models"
	"hotelhub/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrRoomOccupied      = errors.New("room already occupied")
	ErrAlreadyCheckedOut = errors.New("booking already checked out")
	ErrNoIDProofDocument = errors.New("no id proof document uploaded")
)

const idProofURLValidity = 15 * time.Minute

type CreateBookingRequest struct {
	RoomID        uuid.UUID
	GuestName     string
	GuestPhone    string
	CheckInDate   time.Time
	CheckOutDate  time.Time
	IDProofType   string
	IDProofNumber string
	IsPaid        bool
}

// BookingService drives the booking lifecycle. Creating a booking flips the
// room to occupied and checkout flips it back; the two writes are sequential
// and independently committed, so a crash between them leaves an observable
// inconsistency window. That is accepted behavior, not compensated for.
type BookingService interface {
	List(ctx context.Context, hotelName string) ([]*models.Booking, error)
	Create(ctx context.Context, hotelName string, actor *models.User, req *CreateBookingRequest) (*models.Booking, error)
	UpdatePayment(ctx context.Context, hotelName string, actor *models.User, id uuid.UUID, isPaid bool) (*models.Booking, error)
	Checkout(ctx context.Context, hotelName string, actor *models.User, id uuid.UUID) (*models.Booking, error)
	UploadIDProof(ctx context.Context, hotelName string, actor *models.User, id uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (*models.Booking, error)
	IDProofURL(ctx context.Context, hotelName string, id uuid.UUID) (string, error)
}

type bookingService struct {
	bookingRepo repositories.BookingRepository
	roomRepo    repositories.RoomRepository
	auditSvc    AuditService
	storageSvc  StorageService
	bucket      string
}

func NewBookingService(bookingRepo repositories.BookingRepository, roomRepo repositories.RoomRepository, auditSvc AuditService, storageSvc StorageService, bucket string) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		auditSvc:    auditSvc,
		storageSvc:  storageSvc,
		bucket:      bucket,
	}
}

// List returns every booking of the tenant. The dashboard is the only
// limited consumer; this view is deliberately unbounded.
func (s *bookingService) List(ctx context.Context, hotelName string) ([]*models.Booking, error) {
	return s.bookingRepo.List(ctx, hotelName, 0)
}

func (s *bookingService) Create(ctx context.Context, hotelName string, actor *models.User, req *CreateBookingRequest) (*models.Booking, error) {
	room, err := s.roomRepo.GetByID(ctx, hotelName, req.RoomID)
	if err != nil {
		return nil, err
	}

	if room.Status == models.RoomOccupied {
		return nil, ErrRoomOccupied
	}

	booking := &models.Booking{
		ID:            uuid.New(),
		HotelName:     hotelName,
		RoomID:        room.ID,
		GuestName:     req.GuestName,
		GuestPhone:    req.GuestPhone,
		CheckInDate:   req.CheckInDate,
		CheckOutDate:  req.CheckOutDate,
		IDProofType:   req.IDProofType,
		IDProofNumber: req.IDProofNumber,
		IsPaid:        req.IsPaid,
		Status:        models.BookingActive,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	// Second, independently committed write: mark the room occupied.
	if err := s.roomRepo.UpdateStatus(ctx, hotelName, room.ID, models.RoomOccupied); err != nil {
		log.Printf("BOOKING CREATE: failed to mark room %s occupied: %v", room.RoomNumber, err)
		return nil, err
	}
	room.Status = models.RoomOccupied
	booking.Room = room

	s.auditSvc.Record(ctx, hotelName, models.ActionBookingCreated, "booking", booking.ID,
		fmt.Sprintf("Booking created for room %s by %s", room.RoomNumber, booking.GuestName), actor)

	return booking, nil
}

func (s *bookingService) UpdatePayment(ctx context.Context, hotelName string, actor *models.User, id uuid.UUID, isPaid bool) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, hotelName, id)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.UpdatePayment(ctx, hotelName, id, isPaid); err != nil {
		return nil, err
	}
	booking.IsPaid = isPaid

	paidLabel := "UNPAID"
	if isPaid {
		paidLabel = "PAID"
	}
	s.auditSvc.Record(ctx, hotelName, models.ActionBookingPaymentUpdate, "booking", booking.ID,
		fmt.Sprintf("Payment status for booking %s set to %s", booking.ID, paidLabel), actor)

	return booking, nil
}

func (s *bookingService) Checkout(ctx context.Context, hotelName string, actor *models.User, id uuid.UUID) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, hotelName, id)
	if err != nil {
		return nil, err
	}

	if booking.Status == models.BookingCheckedOut {
		return nil, ErrAlreadyCheckedOut
	}

	if err := s.bookingRepo.UpdateStatus(ctx, hotelName, id, models.BookingCheckedOut); err != nil {
		return nil, err
	}
	booking.Status = models.BookingCheckedOut

	// Freeing the room is best-effort: the checkout stands even when the
	// room row can no longer be found.
	roomNumber := ""
	if room, err := s.roomRepo.GetByID(ctx, hotelName, booking.RoomID); err == nil {
		if err := s.roomRepo.UpdateStatus(ctx, hotelName, room.ID, models.RoomAvailable); err != nil {
			log.Printf("CHECKOUT: failed to free room %s: %v", room.RoomNumber, err)
		} else {
			room.Status = models.RoomAvailable
			booking.Room = room
		}
		roomNumber = room.RoomNumber
	} else if !errors.Is(err, pgx.ErrNoRows) {
		log.Printf("CHECKOUT: room lookup failed for booking %s: %v", booking.ID, err)
	}

	s.auditSvc.Record(ctx, hotelName, models.ActionBookingCheckout, "booking", booking.ID,
		fmt.Sprintf("Guest %s checked out from room %s", booking.GuestName, roomNumber), actor)

	return booking, nil
}

func (s *bookingService) UploadIDProof(ctx context.Context, hotelName string, actor *models.User, id uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, hotelName, id)
	if err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("%s/%s/%s", hotelName, booking.ID, path.Base(filename))
	if err := s.storageSvc.UploadObject(ctx, s.bucket, objectName, reader, size, contentType); err != nil {
		return nil, fmt.Errorf("failed to store id proof: %w", err)
	}

	if err := s.bookingRepo.SetIDProofObject(ctx, hotelName, id, objectName); err != nil {
		return nil, err
	}
	booking.IDProofObject = &objectName

	s.auditSvc.Record(ctx, hotelName, models.ActionBookingIDProofUpload, "booking", booking.ID,
		fmt.Sprintf("ID proof document uploaded for guest %s", booking.GuestName), actor)

	return booking, nil
}

func (s *bookingService) IDProofURL(ctx context.Context, hotelName string, id uuid.UUID) (string, error) {
	booking, err := s.bookingRepo.GetByID(ctx, hotelName, id)
	if err != nil {
		return "", err
	}
	if booking.IDProofObject == nil || *booking.IDProofObject == "" {
		return "", ErrNoIDProofDocument
	}
	return s.storageSvc.GetPresignedURL(ctx, s.bucket, *booking.IDProofObject, idProofURLValidity)
}
