package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "mutawazi_proposals/internal/adapter/http/dto/request"
	response "mutawazi_proposals/internal/adapter/http/dto/response"
	"mutawazi_proposals/internal/usecase"
	"mutawazi_proposals/pkg"
)

var errInvalidCashFlowPayload = pkg.NewDomainErrorSimple("INVALID_CASHFLOW_INPUT", "Invalid cash flow payload", http.StatusBadRequest)

// CashFlowHandler handles deliverable cash-flow calculation requests.

type CashFlowHandler struct {
	usecase usecase.ICashFlowUseCase
}

func NewCashFlowHandler(uc usecase.ICashFlowUseCase) *CashFlowHandler {
	return &CashFlowHandler{usecase: uc}
}

// ComputeDeliverables prices a sequence of deliverables and returns the
// per-deliverable lines with the aggregate summary.
func (h *CashFlowHandler) ComputeDeliverables(c *gin.Context) {
	var payload request.CashFlowRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCashFlowPayload.HTTPStatus, errInvalidCashFlowPayload.ToHTTPError())
		return
	}

	results, summary, err := h.usecase.ComputeCashFlow(c.Request.Context(), payload.ToEntities())
	if err != nil {
		appErr := mapCashFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCashFlow(results, summary))
}

func mapCashFlowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownService):
		return pkg.NewDomainErrorSimple("UNKNOWN_SERVICE", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingAmount):
		return pkg.NewDomainErrorSimple("MISSING_AMOUNT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDeliverable):
		return pkg.NewDomainErrorSimple("INVALID_DELIVERABLE", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
