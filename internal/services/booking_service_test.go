package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"hotelhub/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, hotelName string, id uuid.UUID) (*models.Booking, error) {
	args := m.Called(ctx, hotelName, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, hotelName string, limit int) ([]*models.Booking, error) {
	args := m.Called(ctx, hotelName, limit)
	return args.Get(0).([]*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdatePayment(ctx context.Context, hotelName string, id uuid.UUID, isPaid bool) error {
	args := m.Called(ctx, hotelName, id, isPaid)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, hotelName string, id uuid.UUID, status string) error {
	args := m.Called(ctx, hotelName, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) SetIDProofObject(ctx context.Context, hotelName string, id uuid.UUID, objectName string) error {
	args := m.Called(ctx, hotelName, id, objectName)
	return args.Error(0)
}

func (m *MockBookingRepository) CountActive(ctx context.Context, hotelName string) (int, error) {
	args := m.Called(ctx, hotelName)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepository) CountCheckInsBetween(ctx context.Context, hotelName string, start, end time.Time) (int, error) {
	args := m.Called(ctx, hotelName, start, end)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepository) CountCheckOutsBetween(ctx context.Context, hotelName string, start, end time.Time) (int, error) {
	args := m.Called(ctx, hotelName, start, end)
	return args.Int(0), args.Error(1)
}

type MockStorageService struct {
	mock.Mock
}

func (m *MockStorageService) UploadObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, contentType string) error {
	args := m.Called(ctx, bucketName, objectName, reader, objectSize, contentType)
	return args.Error(0)
}

func (m *MockStorageService) GetPresignedURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockStorageService) DeleteObject(ctx context.Context, bucketName, objectName string) error {
	args := m.Called(ctx, bucketName, objectName)
	return args.Error(0)
}

func (m *MockStorageService) EnsureBucketExists(ctx context.Context, bucketName string) error {
	args := m.Called(ctx, bucketName)
	return args.Error(0)
}

type BookingServiceTestSuite struct {
	suite.Suite
	mockBookingRepo *MockBookingRepository
	mockRoomRepo    *MockRoomRepository
	mockAuditSvc    *MockAuditService
	mockStorageSvc  *MockStorageService
	service         BookingService
	hotel           string
	actor           *models.User
}

func (suite *BookingServiceTestSuite) SetupTest() {
	suite.mockBookingRepo = &MockBookingRepository{}
	suite.mockRoomRepo = &MockRoomRepository{}
	suite.mockAuditSvc = &MockAuditService{}
	suite.mockStorageSvc = &MockStorageService{}
	suite.service = NewBookingService(suite.mockBookingRepo, suite.mockRoomRepo, suite.mockAuditSvc, suite.mockStorageSvc, "hotelhub-id-proofs")
	suite.hotel = "Grand Lotus"
	suite.actor = &models.User{ID: uuid.New(), Name: "Asha", Role: models.RoleStaff, HotelName: suite.hotel}
}

func (suite *BookingServiceTestSuite) TearDownTest() {
	suite.mockBookingRepo.AssertExpectations(suite.T())
	suite.mockRoomRepo.AssertExpectations(suite.T())
	suite.mockAuditSvc.AssertExpectations(suite.T())
	suite.mockStorageSvc.AssertExpectations(suite.T())
}

func TestBookingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}

func (suite *BookingServiceTestSuite) createRequest(roomID uuid.UUID) *CreateBookingRequest {
	return &CreateBookingRequest{
		RoomID:        roomID,
		GuestName:     "Ravi Kumar",
		GuestPhone:    "9876543210",
		CheckInDate:   time.Now(),
		CheckOutDate:  time.Now().Add(48 * time.Hour),
		IDProofType:   "passport",
		IDProofNumber: "P1234567",
	}
}

func (suite *BookingServiceTestSuite) TestCreate_MarksRoomOccupied() {
	roomID := uuid.New()
	room := &models.Room{ID: roomID, HotelName: suite.hotel, RoomNumber: "101", Status: models.RoomAvailable}

	suite.mockRoomRepo.On("GetByID", mock.Anything, suite.hotel, roomID).Return(room, nil).Once()
	suite.mockBookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil).Once()
	suite.mockRoomRepo.On("UpdateStatus", mock.Anything, suite.hotel, roomID, models.RoomOccupied).Return(nil).Once()
	suite.mockAuditSvc.On("Record", mock.Anything, suite.hotel, models.ActionBookingCreated, "booking", mock.Anything, mock.Anything, suite.actor).Once()

	booking, err := suite.service.Create(context.Background(), suite.hotel, suite.actor, suite.createRequest(roomID))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.BookingActive, booking.Status)
	assert.NotNil(suite.T(), booking.Room)
	assert.Equal(suite.T(), models.RoomOccupied, booking.Room.Status)
}

func (suite *BookingServiceTestSuite) TestCreate_RoomOccupiedConflict() {
	roomID := uuid.New()
	room := &models.Room{ID: roomID, HotelName: suite.hotel, RoomNumber: "101", Status: models.RoomOccupied}

	suite.mockRoomRepo.On("GetByID", mock.Anything, suite.hotel, roomID).Return(room, nil).Once()

	booking, err := suite.service.Create(context.Background(), suite.hotel, suite.actor, suite.createRequest(roomID))

	assert.Nil(suite.T(), booking)
	assert.True(suite.T(), errors.Is(err, ErrRoomOccupied))
}

func (suite *BookingServiceTestSuite) TestCreate_UnderMaintenanceRoomIsBookable() {
	roomID := uuid.New()
	room := &models.Room{ID: roomID, HotelName: suite.hotel, RoomNumber: "103", Status: models.RoomUnderMaintenance}

	suite.mockRoomRepo.On("GetByID", mock.Anything, suite.hotel, roomID).Return(room, nil).Once()
	suite.mockBookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil).Once()
	suite.mockRoomRepo.On("UpdateStatus", mock.Anything, suite.hotel, roomID, models.RoomOccupied).Return(nil).Once()
	suite.mockAuditSvc.On("Record", mock.Anything, suite.hotel, models.ActionBookingCreated, "booking", mock.Anything, mock.Anything, suite.actor).Once()

	booking, err := suite.service.Create(context.Background(), suite.hotel, suite.actor, suite.createRequest(roomID))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoomOccupied, booking.Room.Status)
}

func (suite *BookingServiceTestSuite) TestCreate_RoomNotFound() {
	roomID := uuid.New()

	suite.mockRoomRepo.On("GetByID", mock.Anything, suite.hotel, roomID).Return((*models.Room)(nil), pgx.ErrNoRows).Once()

	booking, err := suite.service.Create(context.Background(), suite.hotel, suite.actor, suite.createRequest(roomID))

	assert.Nil(suite.T(), booking)
	assert.True(suite.T(), errors.Is(err, pgx.ErrNoRows))
}

func (suite *BookingServiceTestSuite) TestUpdatePayment_Success() {
	bookingID := uuid.New()
	booking := &models.Booking{ID: bookingID, HotelName: suite.hotel, GuestName: "Ravi Kumar", Status: models.BookingActive}

	suite.mockBookingRepo.On("GetByID", mock.Anything, suite.hotel, bookingID).Return(booking, nil).Once()
	suite.mockBookingRepo.On("UpdatePayment", mock.Anything, suite.hotel, bookingID, true).Return(nil).Once()
	suite.mockAuditSvc.On("Record", mock.Anything, suite.hotel, models.ActionBookingPaymentUpdate, "booking", bookingID, mock.Anything, suite.actor).Once()

	updated, err := suite.service.UpdatePayment(context.Background(), suite.hotel, suite.actor, bookingID, true)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), updated.IsPaid)
}

func (suite *BookingServiceTestSuite) TestCheckout_FreesRoom() {
	bookingID := uuid.New()
	roomID := uuid.New()
	booking := &models.Booking{ID: bookingID, HotelName: suite.hotel, RoomID: roomID, GuestName: "Ravi Kumar", Status: models.BookingActive}
	room := &models.Room{ID: roomID, HotelName: suite.hotel, RoomNumber: "101", Status: models.RoomOccupied}

	suite.mockBookingRepo.On("GetByID", mock.Anything, suite.hotel, bookingID).Return(booking, nil).Once()
	suite.mockBookingRepo.On("UpdateStatus", mock.Anything, suite.hotel, bookingID, models.BookingCheckedOut).Return(nil).Once()
	suite.mockRoomRepo.On("GetByID", mock.Anything, suite.hotel, roomID).Return(room, nil).Once()
	suite.mockRoomRepo.On("UpdateStatus", mock.Anything, suite.hotel, roomID, models.RoomAvailable).Return(nil).Once()
	suite.mockAuditSvc.On("Record", mock.Anything, suite.hotel, models.ActionBookingCheckout, "booking", bookingID, mock.Anything, suite.actor).Once()

	updated, err := suite.service.Checkout(context.Background(), suite.hotel, suite.actor, bookingID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.BookingCheckedOut, updated.Status)
	assert.Equal(suite.T(), models.RoomAvailable, updated.Room.Status)
}

func (suite *BookingServiceTestSuite) TestCheckout_AlreadyCheckedOut() {
	bookingID := uuid.New()
	booking := &models.Booking{ID: bookingID, HotelName: suite.hotel, Status: models.BookingCheckedOut}

	suite.mockBookingRepo.On("GetByID", mock.Anything, suite.hotel, bookingID).Return(booking, nil).Once()

	updated, err := suite.service.Checkout(context.Background(), suite.hotel, suite.actor, bookingID)

	assert.Nil(suite.T(), updated)
	assert.True(suite.T(), errors.Is(err, ErrAlreadyCheckedOut))
}

func (suite *BookingServiceTestSuite) TestCheckout_StandsWhenRoomIsGone() {
	bookingID := uuid.New()
	roomID := uuid.New()
	booking := &models.Booking{ID: bookingID, HotelName: suite.hotel, RoomID: roomID, GuestName: "Ravi Kumar", Status: models.BookingActive}

	suite.mockBookingRepo.On("GetByID", mock.Anything, suite.hotel, bookingID).Return(booking, nil).Once()
	suite.mockBookingRepo.On("UpdateStatus", mock.Anything, suite.hotel, bookingID, models.BookingCheckedOut).Return(nil).Once()
	suite.mockRoomRepo.On("GetByID", mock.Anything, suite.hotel, roomID).Return((*models.Room)(nil), pgx.ErrNoRows).Once()
	suite.mockAuditSvc.On("Record", mock.Anything, suite.hotel, models.ActionBookingCheckout, "booking", bookingID, mock.Anything, suite.actor).Once()

	updated, err := suite.service.Checkout(context.Background(), suite.hotel, suite.actor, bookingID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.BookingCheckedOut, updated.Status)
	assert.Nil(suite.T(), updated.Room)
}

func (suite *BookingServiceTestSuite) TestUploadIDProof_StoresObjectUnderTenantPrefix() {
	bookingID := uuid.New()
	booking := &models.Booking{ID: bookingID, HotelName: suite.hotel, GuestName: "Ravi Kumar"}
	reader := strings.NewReader("pdf bytes")
	wantObject := suite.hotel + "/" + bookingID.String() + "/passport.pdf"

	suite.mockBookingRepo.On("GetByID", mock.Anything, suite.hotel, bookingID).Return(booking, nil).Once()
	suite.mockStorageSvc.On("UploadObject", mock.Anything, "hotelhub-id-proofs", wantObject, reader, int64(9), "application/pdf").Return(nil).Once()
	suite.mockBookingRepo.On("SetIDProofObject", mock.Anything, suite.hotel, bookingID, wantObject).Return(nil).Once()
	suite.mockAuditSvc.On("Record", mock.Anything, suite.hotel, models.ActionBookingIDProofUpload, "booking", bookingID, mock.Anything, suite.actor).Once()

	updated, err := suite.service.UploadIDProof(context.Background(), suite.hotel, suite.actor, bookingID, "passport.pdf", reader, 9, "application/pdf")

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), updated.IDProofObject)
	assert.Equal(suite.T(), wantObject, *updated.IDProofObject)
}

func (suite *BookingServiceTestSuite) TestIDProofURL_Success() {
	bookingID := uuid.New()
	object := suite.hotel + "/" + bookingID.String() + "/passport.pdf"
	booking := &models.Booking{ID: bookingID, HotelName: suite.hotel, IDProofObject: &object}

	suite.mockBookingRepo.On("GetByID", mock.Anything, suite.hotel, bookingID).Return(booking, nil).Once()
	suite.mockStorageSvc.On("GetPresignedURL", mock.Anything, "hotelhub-id-proofs", object, idProofURLValidity).Return("https://minio/presigned", nil).Once()

	url, err := suite.service.IDProofURL(context.Background(), suite.hotel, bookingID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "https://minio/presigned", url)
}

func (suite *BookingServiceTestSuite) TestIDProofURL_NothingUploaded() {
	bookingID := uuid.New()
	booking := &models.Booking{ID: bookingID, HotelName: suite.hotel}

	suite.mockBookingRepo.On("GetByID", mock.Anything, suite.hotel, bookingID).Return(booking, nil).Once()

	url, err := suite.service.IDProofURL(context.Background(), suite.hotel, bookingID)

	assert.Empty(suite.T(), url)
	assert.True(suite.T(), errors.Is(err, ErrNoIDProofDocument))
}

func (suite *BookingServiceTestSuite) TestList_ReturnsAllBookingsUnbounded() {
	// The list view is never capped; only the dashboard asks for a limit.
	bookings := make([]*models.Booking, 600)
	for i := range bookings {
		bookings[i] = &models.Booking{ID: uuid.New(), HotelName: suite.hotel}
	}

	suite.mockBookingRepo.On("List", mock.Anything, suite.hotel, 0).Return(bookings, nil).Once()

	got, err := suite.service.List(context.Background(), suite.hotel)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 600)
}

func (suite *BookingServiceTestSuite) TestLifecycle_CreateRoomBookListCheckout() {
	// Full tenant walk-through: admin creates room 101, books a guest into
	// it, the list shows the active stay, checkout frees the room again.
	roomSvc := NewRoomService(suite.mockRoomRepo, suite.mockAuditSvc)
	ctx := context.Background()
	hotel := "Lotus"
	admin := &models.User{ID: uuid.New(), Name: "Lotus Admin", Role: models.RoleAdmin, HotelName: hotel}

	suite.mockAuditSvc.On("Record", mock.Anything, hotel, mock.Anything, mock.Anything, mock.Anything, mock.Anything, admin)

	suite.mockRoomRepo.On("GetByNumber", mock.Anything, hotel, "101").Return((*models.Room)(nil), pgx.ErrNoRows).Once()
	suite.mockRoomRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Room")).Return(nil).Once()

	room, err := roomSvc.Create(ctx, hotel, admin, &CreateRoomRequest{
		RoomNumber:   "101",
		RoomType:     models.RoomTypeDouble,
		CostPerNight: 2500,
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoomAvailable, room.Status)

	// Subsequent reads hand back the same room record so status flips made
	// through UpdateStatus stay visible across the steps.
	suite.mockRoomRepo.On("GetByID", mock.Anything, hotel, room.ID).Return(room, nil)
	suite.mockRoomRepo.On("UpdateStatus", mock.Anything, hotel, room.ID, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { room.Status = args.String(3) }).Return(nil)

	var stored *models.Booking
	suite.mockBookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Booking")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*models.Booking) }).Return(nil).Once()

	booking, err := suite.service.Create(ctx, hotel, admin, &CreateBookingRequest{
		RoomID:        room.ID,
		GuestName:     "Ravi Kumar",
		GuestPhone:    "9876543210",
		CheckInDate:   time.Now(),
		CheckOutDate:  time.Now().Add(48 * time.Hour),
		IDProofType:   "passport",
		IDProofNumber: "P1234567",
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.BookingActive, booking.Status)
	assert.Equal(suite.T(), models.RoomOccupied, room.Status)

	suite.mockBookingRepo.On("List", mock.Anything, hotel, 0).Return([]*models.Booking{stored}, nil).Once()

	listed, err := suite.service.List(ctx, hotel)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), listed, 1)
	assert.Equal(suite.T(), models.BookingActive, listed[0].Status)

	// Booking the occupied room again is refused mid-stay.
	_, err = suite.service.Create(ctx, hotel, admin, &CreateBookingRequest{
		RoomID:       room.ID,
		GuestName:    "Walk In",
		GuestPhone:   "9000000000",
		CheckInDate:  time.Now(),
		CheckOutDate: time.Now().Add(24 * time.Hour),
		IDProofType:  "passport", IDProofNumber: "P7654321",
	})
	assert.True(suite.T(), errors.Is(err, ErrRoomOccupied))

	suite.mockBookingRepo.On("GetByID", mock.Anything, hotel, booking.ID).Return(stored, nil).Once()
	suite.mockBookingRepo.On("UpdateStatus", mock.Anything, hotel, booking.ID, models.BookingCheckedOut).Return(nil).Once()

	checkedOut, err := suite.service.Checkout(ctx, hotel, admin, booking.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.BookingCheckedOut, checkedOut.Status)
	assert.Equal(suite.T(), models.RoomAvailable, room.Status)
}
