package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/ordering-system/internal/api/metrics"
	"github.com/bistroboss/ordering-system/internal/core/ports"
)

// PaymentHandler handles payment recording and history. Record and History
// are scoped to the authenticated caller; AdminHistory sits behind the admin
// gate and can see everything.
type PaymentHandler struct {
	paymentService ports.PaymentService
}

func NewPaymentHandler(paymentService ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Record persists a completed checkout for the caller and clears the
// purchased cart items.
//
// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordPaymentRequest  true  "Payment details"
// @Success      201   {object}  domain.Payment
// @Failure      400   {object}  errorResponse
// @Router       /api/v1/payments [post]
func (h *PaymentHandler) Record(c echo.Context) error {
	email, err := claimsEmail(c)
	if err != nil {
		return err
	}

	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payment, err := h.paymentService.RecordPayment(c.Request().Context(), ports.RecordPaymentInput{
		Email:         email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		MenuItemIDs:   req.MenuItemIDs,
		CartItemIDs:   req.CartItemIDs,
	})
	if err != nil {
		return err
	}
	metrics.PaymentsRecordedTotal.Inc()

	return c.JSON(http.StatusCreated, payment)
}

// History returns the caller's own payment history.
//
// @Summary      Own payment history
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Payment
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/payments [get]
func (h *PaymentHandler) History(c echo.Context) error {
	email, err := claimsEmail(c)
	if err != nil {
		return err
	}

	payments, err := h.paymentService.History(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

// AdminHistory returns payment history across all users, optionally filtered
// by email.
//
// @Summary      All payment history
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        email  query     string  false  "Filter by user email"
// @Success      200    {array}   domain.Payment
// @Failure      403    {object}  errorResponse
// @Router       /api/v1/admin/payments [get]
func (h *PaymentHandler) AdminHistory(c echo.Context) error {
	payments, err := h.paymentService.History(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}
