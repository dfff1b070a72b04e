package handler

import (
	"errors"
	"net/http"
	"slices"

	"github.com/wb-go/wbf/ginext"

	"github.com/hithereguys123/Creative-Clicks/internal/domain"
	"github.com/hithereguys123/Creative-Clicks/internal/flow"
	"github.com/hithereguys123/Creative-Clicks/internal/handler/dto"
	"github.com/hithereguys123/Creative-Clicks/internal/middleware"
	"github.com/hithereguys123/Creative-Clicks/internal/session"
)

type Handler struct {
	catalog []domain.ServiceOption
}

func NewHandler(catalog []domain.ServiceOption) *Handler {
	return &Handler{catalog: catalog}
}

func (h *Handler) flows(c *ginext.Context) *session.Flows {
	flows := middleware.FlowsFrom(c)
	if flows == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.ErrorResponse{Error: "no session"},
		)
	}
	return flows
}

// Media

func (h *Handler) ListMedia(c *ginext.Context) {
	flows := h.flows(c)
	if flows == nil {
		return
	}

	var err error
	if raw := c.Query("category"); raw != "" {
		err = flows.Media.SetCategory(c.Request.Context(), domain.Category(raw))
	} else {
		err = flows.Media.Refresh(c.Request.Context())
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	items := flows.Media.Items()
	resp := dto.MediaListResponse{
		Category: string(flows.Media.Category()),
		Items:    make([]dto.MediaItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.ToMediaItemResponse(item))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UploadMedia(c *ginext.Context) {
	flows := h.flows(c)
	if flows == nil {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "no files in request"})
		return
	}

	files := make([]domain.UploadFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		defer f.Close()

		files = append(files, domain.UploadFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        f,
		})
	}

	err = flows.Media.Upload(c.Request.Context(), files)

	var batchErr *domain.UploadBatchError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.UploadResponse{Uploaded: len(files)})
	case errors.As(err, &batchErr):
		failed := batchErr.FailedNames()
		c.JSON(http.StatusOK, dto.UploadResponse{
			Uploaded: len(files) - len(failed),
			Failed:   failed,
		})
	default:
		h.handleError(c, err)
	}
}

// Workshops

func (h *Handler) ListWorkshops(c *ginext.Context) {
	flows := h.flows(c)
	if flows == nil {
		return
	}

	if err := flows.Registration.FetchCatalog(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}

	workshops := flows.Registration.Workshops()
	resp := make([]dto.WorkshopResponse, 0, len(workshops))
	for _, w := range workshops {
		resp = append(resp, dto.ToWorkshopResponse(w))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RegisterWorkshop(c *ginext.Context) {
	flows := h.flows(c)
	if flows == nil {
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reg := flows.Registration
	if len(reg.Workshops()) == 0 {
		if err := reg.FetchCatalog(c.Request.Context()); err != nil {
			h.handleError(c, err)
			return
		}
	}

	if err := reg.OpenRegistrationByID(c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	fields := map[string]string{
		"participant_name":  req.ParticipantName,
		"participant_email": req.ParticipantEmail,
		"phone":             req.Phone,
	}
	for name, value := range fields {
		if err := reg.UpdateField(name, value); err != nil {
			h.handleError(c, err)
			return
		}
	}

	if err := reg.SubmitRegistration(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RegisterResponse{
		CheckoutURL: flows.Checkout.Take(),
	})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	flows := h.flows(c)
	if flows == nil {
		return
	}

	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := syncBookingDraft(flows.Booking, req); err != nil {
		h.handleError(c, err)
		return
	}

	if err := flows.Booking.Submit(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"status": "submitted"})
}

func (h *Handler) EstimateBooking(c *ginext.Context) {
	flows := h.flows(c)
	if flows == nil {
		return
	}

	var req dto.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := flows.Booking.SetEstimatedHours(req.EstimatedHours); err != nil {
		h.handleError(c, err)
		return
	}
	if err := syncServices(flows.Booking, req.Services); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EstimateResponse{Estimate: flows.Booking.Estimate()})
}

func (h *Handler) ListServices(c *ginext.Context) {
	resp := make([]dto.ServiceOptionResponse, 0, len(h.catalog))
	for _, opt := range h.catalog {
		resp = append(resp, dto.ToServiceOptionResponse(opt))
	}
	c.JSON(http.StatusOK, resp)
}

// Contact

func (h *Handler) SendContact(c *ginext.Context) {
	flows := h.flows(c)
	if flows == nil {
		return
	}

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	fields := map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"subject": req.Subject,
		"message": req.Message,
	}
	for name, value := range fields {
		if err := flows.Contact.UpdateField(name, value); err != nil {
			h.handleError(c, err)
			return
		}
	}

	if err := flows.Contact.Submit(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"status": "sent"})
}

// syncBookingDraft pushes the request body into the booking flow field by
// field, so the flow's own validation and the in-flight gate stay in charge.
func syncBookingDraft(f *flow.BookingFlow, req dto.BookingRequest) error {
	fields := map[string]string{
		"client_name":      req.ClientName,
		"client_email":     req.ClientEmail,
		"phone":            req.Phone,
		"event_date":       req.EventDate,
		"event_type":       req.EventType,
		"special_requests": req.SpecialRequests,
	}
	for name, value := range fields {
		if err := f.UpdateField(name, value); err != nil {
			return err
		}
	}

	if err := f.SetEstimatedHours(req.EstimatedHours); err != nil {
		return err
	}

	return syncServices(f, req.Services)
}

// syncServices reconciles the flow's service selection with the requested
// set using toggles, preserving the flow's dedup semantics.
func syncServices(f *flow.BookingFlow, want []string) error {
	for _, id := range f.Draft().Services {
		if !slices.Contains(want, id) {
			if err := f.ToggleService(id); err != nil {
				return err
			}
		}
	}
	for _, id := range want {
		if !slices.Contains(f.Draft().Services, id) {
			if err := f.ToggleService(id); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrWorkshopNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSubmissionInFlight),
		errors.Is(err, domain.ErrUploadInProgress),
		errors.Is(err, domain.ErrNoActiveWorkshop):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBackendRejected):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBackendUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
