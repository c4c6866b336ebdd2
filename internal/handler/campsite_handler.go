package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/campsitehq/campsite-service/internal/dto"
	"github.com/campsitehq/campsite-service/internal/service"
	"github.com/labstack/echo/v4"
)

type CampsiteHandler struct {
	svc service.CampsiteService
}

func NewCampsiteHandler(svc service.CampsiteService) *CampsiteHandler {
	return &CampsiteHandler{svc: svc}
}

func (h *CampsiteHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/init", h.Initialize)
	api.POST("/available", h.Available)
	api.POST("/reserve", h.Reserve)
	api.POST("/cancel", h.Cancel)
	api.POST("/modify", h.Modify)
	api.GET("/reservations/:bookingId", h.GetReservation)
	api.GET("/reservations", h.ListReservations)
	api.GET("/schedules", h.ListSchedules)
}

func (h *CampsiteHandler) Initialize(c echo.Context) error {
	var req dto.InitializeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	start, err := dto.ParseDate(req.AvailableStartDate)
	if err != nil || req.AvailableStartDate == "" {
		return c.JSON(http.StatusBadRequest, dto.InitializeResponse{
			Request: &req,
			Errors:  []string{"available_start_date must be a YYYY-MM-DD date"},
		})
	}
	end, err := dto.ParseDate(req.AvailableEndDate)
	if err != nil || req.AvailableEndDate == "" {
		return c.JSON(http.StatusBadRequest, dto.InitializeResponse{
			Request: &req,
			Errors:  []string{"available_end_date must be a YYYY-MM-DD date"},
		})
	}

	if err := h.svc.Initialize(c.Request().Context(), start, end); err != nil {
		if errors.Is(err, service.ErrInvalidDateRange) {
			return c.JSON(http.StatusBadRequest, dto.InitializeResponse{
				Request: &req,
				Errors:  []string{err.Error()},
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.InitializeResponse{Request: &req})
}

func (h *CampsiteHandler) Available(c echo.Context) error {
	var req dto.SchedulesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	start, errStart := dto.ParseDate(req.StartDate)
	end, errEnd := dto.ParseDate(req.EndDate)
	if errStart != nil || errEnd != nil || req.StartDate == "" || req.EndDate == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "start_date and end_date must be YYYY-MM-DD dates")
	}

	dates, err := h.svc.Available(c.Request().Context(), start, end)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDateRange) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.SchedulesResponse{
		Request:        &req,
		AvailableDates: dto.FormatDates(dates),
	})
}

func (h *CampsiteHandler) Reserve(c echo.Context) error {
	var req dto.ReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	svcReq, parseErrs := toServiceRequest(req)
	if len(parseErrs) > 0 {
		return c.JSON(http.StatusBadRequest, dto.ReservationResponse{Request: &req, Errors: parseErrs})
	}

	reservation, err := h.svc.Reserve(c.Request().Context(), svcReq)
	if err != nil {
		return reservationError(c, &req, err)
	}

	return c.JSON(http.StatusCreated, dto.ReservationResponse{BookingID: reservation.BookingID, Request: &req})
}

func (h *CampsiteHandler) Cancel(c echo.Context) error {
	var req dto.CancellationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.BookingID == "" {
		return c.JSON(http.StatusBadRequest, dto.CancellationResponse{
			Request: &req,
			Errors:  []string{"booking_id is required"},
		})
	}

	result, err := h.svc.Cancel(c.Request().Context(), req.BookingID)
	if err != nil {
		return c.JSON(cancellationStatus(err), dto.CancellationResponse{
			Request: &req,
			Errors:  cancellationMessages(req.BookingID, err),
		})
	}

	return c.JSON(http.StatusOK, toCancellationResponse(&req, result))
}

func (h *CampsiteHandler) Modify(c echo.Context) error {
	var req dto.ModificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.BookingID == "" {
		return c.JSON(http.StatusBadRequest, dto.ModificationResponse{
			Request: &req,
			Errors:  []string{"booking_id is required"},
		})
	}

	checkIn, errIn := dto.ParseDate(req.CheckInDate)
	checkOut, errOut := dto.ParseDate(req.CheckOutDate)
	if errIn != nil || errOut != nil {
		return c.JSON(http.StatusBadRequest, dto.ModificationResponse{
			Request: &req,
			Errors:  []string{"check_in_date and check_out_date must be YYYY-MM-DD dates"},
		})
	}

	result, err := h.svc.Modify(c.Request().Context(), req.BookingID, service.ModificationRequest{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	})
	if err != nil {
		return c.JSON(modificationStatus(err), dto.ModificationResponse{
			Request: &req,
			Errors:  errorMessages(err),
		})
	}

	resp := dto.ModificationResponse{
		Request:      &req,
		Cancellation: toCancellationResponse(&dto.CancellationRequest{BookingID: req.BookingID}, result.Cancellation),
		Reservation:  &dto.ReservationResponse{BookingID: result.Reservation.BookingID},
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CampsiteHandler) GetReservation(c echo.Context) error {
	bookingID := c.Param("bookingId")

	reservation, err := h.svc.GetReservation(c.Request().Context(), bookingID)
	if err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "reservation not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToReservationDetail(reservation))
}

func (h *CampsiteHandler) ListReservations(c echo.Context) error {
	reservations, err := h.svc.ListReservations(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ReservationDetail, len(reservations))
	for i, r := range reservations {
		resp[i] = dto.ToReservationDetail(&r)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CampsiteHandler) ListSchedules(c echo.Context) error {
	schedules, err := h.svc.ListSchedules(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ScheduleDetail, len(schedules))
	for i, s := range schedules {
		resp[i] = dto.ToScheduleDetail(&s)
	}
	return c.JSON(http.StatusOK, resp)
}

func toServiceRequest(req dto.ReservationRequest) (service.ReservationRequest, []string) {
	var errs []string

	checkIn, err := dto.ParseDate(req.CheckInDate)
	if err != nil {
		errs = append(errs, "check_in_date must be a YYYY-MM-DD date")
	}
	checkOut, err := dto.ParseDate(req.CheckOutDate)
	if err != nil {
		errs = append(errs, "check_out_date must be a YYYY-MM-DD date")
	}
	if len(errs) > 0 {
		return service.ReservationRequest{}, errs
	}

	return service.ReservationRequest{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	}, nil
}

func toCancellationResponse(req *dto.CancellationRequest, result *service.CancellationResult) *dto.CancellationResponse {
	r := result.Reservation
	return &dto.CancellationResponse{
		Request:        req,
		CancelledDates: dto.FormatDates(result.CancelledDates),
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		CheckInDate:    dto.FormatDate(r.CheckInDate),
		CheckOutDate:   dto.FormatDate(r.CheckOutDate),
	}
}

func reservationError(c echo.Context, req *dto.ReservationRequest, err error) error {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, dto.ReservationResponse{Request: req, Errors: validationErr.Errors})
	}

	var conflictErr *service.ConflictError
	if errors.As(err, &conflictErr) {
		return c.JSON(http.StatusConflict, dto.ReservationResponse{Request: req, Errors: conflictErr.Messages()})
	}

	if errors.Is(err, service.ErrLockTimeout) {
		return c.JSON(http.StatusConflict, dto.ReservationResponse{Request: req, Errors: []string{err.Error()}})
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func cancellationStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrReservationNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAlreadyCanceled):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrStaleReservation), errors.Is(err, service.ErrLockTimeout):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func cancellationMessages(bookingID string, err error) []string {
	switch {
	case errors.Is(err, service.ErrReservationNotFound):
		return []string{fmt.Sprintf("Cannot cancel non-existing BookingID=%s", bookingID)}
	case errors.Is(err, service.ErrAlreadyCanceled):
		return []string{fmt.Sprintf("Cannot cancel already cancelled BookingID=%s", bookingID)}
	default:
		return []string{err.Error()}
	}
}

func modificationStatus(err error) int {
	var modErr *service.ModificationError
	if !errors.As(err, &modErr) {
		return http.StatusInternalServerError
	}

	switch {
	case errors.Is(modErr.Err, service.ErrReservationNotFound):
		return http.StatusNotFound
	case errors.Is(modErr.Err, service.ErrAlreadyCanceled):
		return http.StatusBadRequest
	case errors.Is(modErr.Err, service.ErrStaleReservation), errors.Is(modErr.Err, service.ErrLockTimeout):
		return http.StatusConflict
	}

	var validationErr *service.ValidationError
	if errors.As(modErr.Err, &validationErr) {
		return http.StatusBadRequest
	}
	var conflictErr *service.ConflictError
	if errors.As(modErr.Err, &conflictErr) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// errorMessages flattens a service error into the user-facing error list.
// The ModificationError case must run first: errors.As would otherwise
// unwrap straight through it and drop the stage prefix.
func errorMessages(err error) []string {
	var modErr *service.ModificationError
	if errors.As(err, &modErr) {
		msgs := errorMessages(modErr.Err)
		out := make([]string, 0, len(msgs))
		for _, m := range msgs {
			out = append(out, fmt.Sprintf("%s: %s", modErr.Stage, m))
		}
		return out
	}
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Errors
	}
	var conflictErr *service.ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr.Messages()
	}
	return []string{err.Error()}
}
