package services

import (
	"context"
	"errors"
	"fmt"

	"hotelhub/internal/models"
	"hotelhub/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrRoomNumberTaken = errors.New("room number already exists")
	ErrInvalidStatus   = errors.New("invalid status value")
	ErrInvalidRoomType = errors.New("invalid room type")
)

type CreateRoomRequest struct {
	RoomNumber   string   `json:"roomNumber"`
	RoomType     string   `json:"roomType"`
	CostPerNight float64  `json:"costPerNight"`
	Amenities    []string `json:"amenities"`
}

// RoomService is the tenant-scoped room inventory. Every call takes the
// caller's hotel name; a room id from another tenant reads as not found.
type RoomService interface {
	List(ctx context.Context, hotelName string) ([]*models.Room, error)
	Create(ctx context.Context, hotelName string, actor *models.User, req *CreateRoomRequest) (*models.Room, error)
	UpdateStatus(ctx context.Context, hotelName string, actor *models.User, id uuid.UUID, status string) (*models.Room, error)
}

type roomService struct {
	roomRepo repositories.RoomRepository
	auditSvc AuditService
}

func NewRoomService(roomRepo repositories.RoomRepository, auditSvc AuditService) RoomService {
	return &roomService{roomRepo: roomRepo, auditSvc: auditSvc}
}

func (s *roomService) List(ctx context.Context, hotelName string) ([]*models.Room, error) {
	return s.roomRepo.List(ctx, hotelName)
}

func (s *roomService) Create(ctx context.Context, hotelName string, actor *models.User, req *CreateRoomRequest) (*models.Room, error) {
	if !models.ValidRoomType(req.RoomType) {
		return nil, ErrInvalidRoomType
	}

	// Room numbers are unique per tenant, not globally.
	existing, err := s.roomRepo.GetByNumber(ctx, hotelName, req.RoomNumber)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrRoomNumberTaken
	}

	room := &models.Room{
		ID:           uuid.New(),
		HotelName:    hotelName,
		RoomNumber:   req.RoomNumber,
		RoomType:     req.RoomType,
		CostPerNight: req.CostPerNight,
		Amenities:    req.Amenities,
		Status:       models.RoomAvailable,
	}
	if room.Amenities == nil {
		room.Amenities = []string{}
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, hotelName, models.ActionRoomCreated, "room", room.ID,
		fmt.Sprintf("Room %s (%s) created at %.0f/night", room.RoomNumber, room.RoomType, room.CostPerNight), actor)

	return room, nil
}

func (s *roomService) UpdateStatus(ctx context.Context, hotelName string, actor *models.User, id uuid.UUID, status string) (*models.Room, error) {
	if !models.ValidRoomStatus(status) {
		return nil, ErrInvalidStatus
	}

	room, err := s.roomRepo.GetByID(ctx, hotelName, id)
	if err != nil {
		return nil, err
	}

	if err := s.roomRepo.UpdateStatus(ctx, hotelName, id, status); err != nil {
		return nil, err
	}
	room.Status = status

	s.auditSvc.Record(ctx, hotelName, models.ActionRoomStatusChange, "room", room.ID,
		fmt.Sprintf("Room %s status changed to %s", room.RoomNumber, status), actor)

	return room, nil
}
