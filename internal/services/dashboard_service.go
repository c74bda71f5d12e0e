package services

import (
	"context"
	"time"

	"hotelhub/internal/common"
	"hotelhub/internal/models"
	"hotelhub/internal/repositories"
)

const recentBookingsLimit = 5

// DashboardSummary is the tenant-scoped rollup rendered on the dashboard.
type DashboardSummary struct {
	TotalRooms       int               `json:"totalRooms"`
	AvailableRooms   int               `json:"availableRooms"`
	OccupiedRooms    int               `json:"occupiedRooms"`
	MaintenanceRooms int               `json:"maintenanceRooms"`
	ActiveBookings   int               `json:"activeBookings"`
	TodayCheckins    int               `json:"todayCheckins"`
	TodayCheckouts   int               `json:"todayCheckouts"`
	RecentBookings   []*models.Booking `json:"recentBookings"`
}

// DashboardService is a pure read aggregation over rooms and bookings.
// Nothing is cached; every call recomputes from storage.
type DashboardService interface {
	Summary(ctx context.Context, hotelName string, now time.Time) (*DashboardSummary, error)
	RecentBookings(ctx context.Context, hotelName string) ([]*models.Booking, error)
}

type dashboardService struct {
	roomRepo    repositories.RoomRepository
	bookingRepo repositories.BookingRepository
}

func NewDashboardService(roomRepo repositories.RoomRepository, bookingRepo repositories.BookingRepository) DashboardService {
	return &dashboardService{roomRepo: roomRepo, bookingRepo: bookingRepo}
}

func (s *dashboardService) Summary(ctx context.Context, hotelName string, now time.Time) (*DashboardSummary, error) {
	roomCounts, err := s.roomRepo.CountByStatus(ctx, hotelName)
	if err != nil {
		return nil, err
	}

	activeBookings, err := s.bookingRepo.CountActive(ctx, hotelName)
	if err != nil {
		return nil, err
	}

	start, end := common.DayWindow(now)
	todayCheckins, err := s.bookingRepo.CountCheckInsBetween(ctx, hotelName, start, end)
	if err != nil {
		return nil, err
	}
	todayCheckouts, err := s.bookingRepo.CountCheckOutsBetween(ctx, hotelName, start, end)
	if err != nil {
		return nil, err
	}

	recent, err := s.bookingRepo.List(ctx, hotelName, recentBookingsLimit)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		AvailableRooms:   roomCounts[models.RoomAvailable],
		OccupiedRooms:    roomCounts[models.RoomOccupied],
		MaintenanceRooms: roomCounts[models.RoomUnderMaintenance],
		ActiveBookings:   activeBookings,
		TodayCheckins:    todayCheckins,
		TodayCheckouts:   todayCheckouts,
		RecentBookings:   recent,
	}
	summary.TotalRooms = summary.AvailableRooms + summary.OccupiedRooms + summary.MaintenanceRooms
	return summary, nil
}

func (s *dashboardService) RecentBookings(ctx context.Context, hotelName string) ([]*models.Booking, error) {
	return s.bookingRepo.List(ctx, hotelName, recentBookingsLimit)
}
