package handlers

import (
	"errors"
	"log"
	"net/http"

	"hotelhub/internal/common"
	"hotelhub/internal/models"
	"hotelhub/internal/services"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// Uploaded ID proof scans are capped at 10 MiB.
const maxIDProofSize = 10 << 20

// BookingHandlers handles booking lifecycle HTTP requests.
type BookingHandlers struct {
	bookingSvc services.BookingService
}

func NewBookingHandlers(bookingSvc services.BookingService) *BookingHandlers {
	return &BookingHandlers{bookingSvc: bookingSvc}
}

// ListBookings returns the tenant's bookings newest first, rooms joined.
func (h *BookingHandlers) ListBookings(c echo.Context) error {
	ctx := c.Request().Context()

	hotelName, ok := common.GetHotelNameFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c, "Tenant not found")
	}

	bookings, err := h.bookingSvc.List(ctx, hotelName)
	if err != nil {
		log.Printf("GET BOOKINGS ERROR: %v", err)
		return common.SendServerError(c, "Failed to fetch bookings")
	}
	if bookings == nil {
		bookings = []*models.Booking{}
	}
	return c.JSON(http.StatusOK, bookings)
}

// CreateBookingRequest represents the booking creation payload
type CreateBookingRequest struct {
	RoomID        string `json:"roomId"`
	GuestName     string `json:"guestName"`
	GuestPhone    string `json:"guestPhone"`
	CheckInDate   string `json:"checkInDate"`
	CheckOutDate  string `json:"checkOutDate"`
	IDProofType   string `json:"idProofType"`
	IDProofNumber string `json:"idProofNumber"`
	IsPaid        bool   `json:"isPaid"`
}

func (h *BookingHandlers) CreateBooking(c echo.Context) error {
	ctx := c.Request().Context()

	user, ok := common.GetUserFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c, "User not authenticated")
	}

	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return common.SendValidationError(c, "Invalid request format")
	}

	if req.RoomID == "" || req.GuestName == "" || req.GuestPhone == "" ||
		req.CheckInDate == "" || req.CheckOutDate == "" ||
		req.IDProofType == "" || req.IDProofNumber == "" {
		return common.SendValidationError(c, "Missing required fields")
	}

	roomID, err := common.ValidateUUID(req.RoomID, "roomId")
	if err != nil {
		return common.SendValidationError(c, err.Error())
	}
	checkIn, err := common.ParseDate(req.CheckInDate, "checkInDate")
	if err != nil {
		return common.SendValidationError(c, err.Error())
	}
	checkOut, err := common.ParseDate(req.CheckOutDate, "checkOutDate")
	if err != nil {
		return common.SendValidationError(c, err.Error())
	}

	booking, err := h.bookingSvc.Create(ctx, user.HotelName, user, &services.CreateBookingRequest{
		RoomID:        roomID,
		GuestName:     req.GuestName,
		GuestPhone:    req.GuestPhone,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		IDProofType:   req.IDProofType,
		IDProofNumber: req.IDProofNumber,
		IsPaid:        req.IsPaid,
	})
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return common.SendNotFoundError(c, "Room")
		case errors.Is(err, services.ErrRoomOccupied):
			return common.SendConflictError(c, "Room already occupied")
		default:
			log.Printf("CREATE BOOKING ERROR: %v", err)
			return common.SendServerError(c, "Failed to create booking")
		}
	}

	return c.JSON(http.StatusCreated, booking)
}

// UpdatePaymentRequest represents the payment flag payload
type UpdatePaymentRequest struct {
	IsPaid bool `json:"isPaid"`
}

func (h *BookingHandlers) UpdatePayment(c echo.Context) error {
	ctx := c.Request().Context()

	user, ok := common.GetUserFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c, "User not authenticated")
	}

	id, err := common.ValidateUUID(c.Param("id"), "booking id")
	if err != nil {
		return common.SendValidationError(c, err.Error())
	}

	var req UpdatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return common.SendValidationError(c, "Invalid request format")
	}

	booking, err := h.bookingSvc.UpdatePayment(ctx, user.HotelName, user, id, req.IsPaid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "Booking")
		}
		log.Printf("UPDATE PAYMENT ERROR: %v", err)
		return common.SendServerError(c, "Failed to update payment")
	}

	return c.JSON(http.StatusOK, booking)
}

func (h *BookingHandlers) Checkout(c echo.Context) error {
	ctx := c.Request().Context()

	user, ok := common.GetUserFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c, "User not authenticated")
	}

	id, err := common.ValidateUUID(c.Param("id"), "booking id")
	if err != nil {
		return common.SendValidationError(c, err.Error())
	}

	booking, err := h.bookingSvc.Checkout(ctx, user.HotelName, user, id)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return common.SendNotFoundError(c, "Booking")
		case errors.Is(err, services.ErrAlreadyCheckedOut):
			return common.SendConflictError(c, "Booking already checked out")
		default:
			log.Printf("CHECKOUT ERROR: %v", err)
			return common.SendServerError(c, "Failed to checkout")
		}
	}

	return c.JSON(http.StatusOK, booking)
}

// UploadIDProof stores a scanned guest ID document for a booking.
func (h *BookingHandlers) UploadIDProof(c echo.Context) error {
	ctx := c.Request().Context()

	user, ok := common.GetUserFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c, "User not authenticated")
	}

	id, err := common.ValidateUUID(c.Param("id"), "booking id")
	if err != nil {
		return common.SendValidationError(c, err.Error())
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		return common.SendValidationError(c, "A document file is required")
	}
	if fileHeader.Size > maxIDProofSize {
		return common.SendValidationError(c, "Document exceeds the 10MB limit")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return common.SendServerError(c, "Failed to read document")
	}
	defer src.Close()

	booking, err := h.bookingSvc.UploadIDProof(ctx, user.HotelName, user, id,
		fileHeader.Filename, src, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "Booking")
		}
		log.Printf("ID PROOF UPLOAD ERROR: %v", err)
		return common.SendServerError(c, "Failed to upload document")
	}

	return c.JSON(http.StatusOK, booking)
}

// GetIDProof returns a short-lived presigned URL for the stored document.
func (h *BookingHandlers) GetIDProof(c echo.Context) error {
	ctx := c.Request().Context()

	hotelName, ok := common.GetHotelNameFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c, "Tenant not found")
	}

	id, err := common.ValidateUUID(c.Param("id"), "booking id")
	if err != nil {
		return common.SendValidationError(c, err.Error())
	}

	url, err := h.bookingSvc.IDProofURL(ctx, hotelName, id)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return common.SendNotFoundError(c, "Booking")
		case errors.Is(err, services.ErrNoIDProofDocument):
			return common.SendNotFoundError(c, "ID proof document")
		default:
			log.Printf("ID PROOF URL ERROR: %v", err)
			return common.SendServerError(c, "Failed to fetch document")
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"url": url})
}
