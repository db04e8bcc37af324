package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "mutawazi_proposals/internal/adapter/http/dto/request"
	response "mutawazi_proposals/internal/adapter/http/dto/response"
	"mutawazi_proposals/internal/domain/entities"
	"mutawazi_proposals/internal/usecase"
	"mutawazi_proposals/pkg"
)

var errInvalidOverheadPayload = pkg.NewDomainErrorSimple("INVALID_OVERHEAD_INPUT", "Invalid overhead payload", http.StatusBadRequest)

// OverheadHandler reads and replaces the monthly overhead rate table.

type OverheadHandler struct {
	usecase usecase.IOverheadUseCase
}

func NewOverheadHandler(uc usecase.IOverheadUseCase) *OverheadHandler {
	return &OverheadHandler{usecase: uc}
}

func (h *OverheadHandler) GetOverhead(c *gin.Context) {
	rates, err := h.usecase.GetRates(c.Request.Context())
	if err != nil {
		appErr := mapOverheadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OverheadResponse{OverheadCosts: rates})
}

func (h *OverheadHandler) UpdateOverhead(c *gin.Context) {
	var payload request.OverheadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOverheadPayload.HTTPStatus, errInvalidOverheadPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateRates(c.Request.Context(), entities.OverheadRates(payload))
	if err != nil {
		appErr := mapOverheadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.UpdateOverheadResponse{Success: true, UpdatedOverheadCosts: updated})
}

func mapOverheadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOverheadRates):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
