package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Quote(ctx context.Context, req *domain.BookingRequest) (*domain.Quote, error)
	Create(ctx context.Context, req *domain.BookingRequest) (*domain.BookingResult, error)
	Get(ctx context.Context, id string) (*domain.BookingDetails, error)
	Cancel(ctx context.Context, id, note string) (*domain.BookingCancellation, error)
	ListCourtOccurrences(ctx context.Context, courtID string, date time.Time) ([]*domain.Occurrence, error)
	ValidateVoucher(ctx context.Context, voucherID string, req *domain.BookingRequest) (*domain.VoucherValidation, error)
	CreateVoucher(ctx context.Context, v *domain.Voucher) (*domain.Voucher, error)
}

type PaymentSvc interface {
	Get(ctx context.Context, id string) (*domain.Payment, error)
	Confirm(ctx context.Context, id string) (*domain.PaymentOutcome, error)
	Cancel(ctx context.Context, id string) (*domain.PaymentOutcome, error)
}

type OccurrenceSvc interface {
	CheckIn(ctx context.Context, id, note string) (*domain.Occurrence, error)
	NoShow(ctx context.Context, id, note string) (*domain.Occurrence, error)
	Cancel(ctx context.Context, id, note string) (*domain.Occurrence, error)
	Complete(ctx context.Context, id, note string) (*domain.Occurrence, error)
}

type PricingSvc interface {
	ListRules(ctx context.Context, courtID string) ([]domain.PricingRule, error)
	ReplaceRules(ctx context.Context, courtID string, rules []domain.PricingRule) ([]domain.PricingRule, error)
}

// QRRenderFunc renders a payment payload as a PNG image.
type QRRenderFunc func(payload string, size int) ([]byte, error)

const maxQRSize = 1024

type Handler struct {
	bookingService    BookingSvc
	paymentService    PaymentSvc
	occurrenceService OccurrenceSvc
	pricingService    PricingSvc
	renderQR          QRRenderFunc
	stream            http.HandlerFunc
}

func NewHandler(
	bookingService BookingSvc,
	paymentService PaymentSvc,
	occurrenceService OccurrenceSvc,
	pricingService PricingSvc,
	renderQR QRRenderFunc,
	stream http.HandlerFunc,
) *Handler {
	return &Handler{
		bookingService:    bookingService,
		paymentService:    paymentService,
		occurrenceService: occurrenceService,
		pricingService:    pricingService,
		renderQR:          renderQR,
		stream:            stream,
	}
}

// Bookings

func (h *Handler) QuoteBooking(c *ginext.Context) {
	req, ok := h.bindBooking(c)
	if !ok {
		return
	}

	q, err := h.bookingService.Quote(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(q))
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	req, ok := h.bindBooking(c)
	if !ok {
		return
	}

	res, err := h.bookingService.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResultResponse(res))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	details, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingDetailsResponse(details))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}
	note, ok := bindNote(c)
	if !ok {
		return
	}

	res, err := h.bookingService.Cancel(c.Request.Context(), id, note)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCancellationResponse(res))
}

// Courts

func (h *Handler) ListCourtOccurrences(c *ginext.Context) {
	date, err := domain.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	occs, err := h.bookingService.ListCourtOccurrences(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOccurrenceResponses(occs))
}

func (h *Handler) ListPricingRules(c *ginext.Context) {
	rules, err := h.pricingService.ListRules(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPricingRuleResponses(rules))
}

func (h *Handler) ReplacePricingRules(c *ginext.Context) {
	var req dto.ReplaceRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rules, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	saved, err := h.pricingService.ReplaceRules(c.Request.Context(), c.Param("id"), rules)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPricingRuleResponses(saved))
}

// Occurrences

func (h *Handler) CheckIn(c *ginext.Context) {
	h.transition(c, h.occurrenceService.CheckIn)
}

func (h *Handler) NoShow(c *ginext.Context) {
	h.transition(c, h.occurrenceService.NoShow)
}

func (h *Handler) CancelOccurrence(c *ginext.Context) {
	h.transition(c, h.occurrenceService.Cancel)
}

func (h *Handler) CompleteOccurrence(c *ginext.Context) {
	h.transition(c, h.occurrenceService.Complete)
}

func (h *Handler) transition(c *ginext.Context, apply func(ctx context.Context, id, note string) (*domain.Occurrence, error)) {
	id, ok := pathID(c, "occurrence")
	if !ok {
		return
	}
	note, ok := bindNote(c)
	if !ok {
		return
	}

	occ, err := apply(c.Request.Context(), id, note)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOccurrenceResponse(occ))
}

// Payments

func (h *Handler) GetPayment(c *ginext.Context) {
	id, ok := pathID(c, "payment")
	if !ok {
		return
	}

	p, err := h.paymentService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(p))
}

func (h *Handler) PaymentQR(c *ginext.Context) {
	id, ok := pathID(c, "payment")
	if !ok {
		return
	}

	size := 0
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxQRSize {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid size"})
			return
		}
		size = n
	}

	p, err := h.paymentService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	png, err := h.renderQR(p.QRPayload, size)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) ConfirmPayment(c *ginext.Context) {
	id, ok := pathID(c, "payment")
	if !ok {
		return
	}

	out, err := h.paymentService.Confirm(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentOutcomeResponse(out))
}

func (h *Handler) CancelPayment(c *ginext.Context) {
	id, ok := pathID(c, "payment")
	if !ok {
		return
	}

	out, err := h.paymentService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentOutcomeResponse(out))
}

// Vouchers

func (h *Handler) ValidateVoucher(c *ginext.Context) {
	var req dto.ValidateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := req.Booking.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.bookingService.ValidateVoucher(c.Request.Context(), req.VoucherID, booking)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *Handler) CreateVoucher(c *ginext.Context) {
	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	v, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.bookingService.CreateVoucher(c.Request.Context(), v)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVoucherResponse(created))
}

// Realtime

func (h *Handler) Stream(c *ginext.Context) {
	h.stream(c.Writer, c.Request)
}

func (h *Handler) bindBooking(c *ginext.Context) (*domain.BookingRequest, bool) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return nil, false
	}

	out, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return nil, false
	}
	return out, true
}

// bindNote reads an optional {"note": "..."} body.
func bindNote(c *ginext.Context) (string, bool) {
	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return "", false
	}
	return req.Note, true
}

func pathID(c *ginext.Context, kind string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + kind + " id"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var (
		conflict *domain.SlotConflictError
		voucher  *domain.VoucherError
	)

	switch {
	case errors.As(err, &conflict):
		blocking := dto.ToOccurrenceResponse(&conflict.Blocking)
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Conflict: &blocking})

	case errors.As(err, &voucher):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error(), Reason: string(voucher.Reason)})

	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrOccurrenceNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrVoucherNotFound),
		errors.Is(err, domain.ErrCourtNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotConflict),
		errors.Is(err, domain.ErrHoldExpired),
		errors.Is(err, domain.ErrPaymentNotPending),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrOutsideWindow):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRuleResolution),
		errors.Is(err, domain.ErrAmbiguousRule),
		errors.Is(err, domain.ErrVoucherInvalid):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
