package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "mutawazi_proposals/internal/adapter/http/dto/request"
	response "mutawazi_proposals/internal/adapter/http/dto/response"
	"mutawazi_proposals/internal/usecase"
	"mutawazi_proposals/pkg"
)

var errInvalidJustificationPayload = pkg.NewDomainErrorSimple("INVALID_JUSTIFICATION_INPUT", "Invalid price justification payload", http.StatusBadRequest)

// JustificationHandler serves AI-generated price justifications. Provider
// failures never surface here; the use case always returns usable text.

type JustificationHandler struct {
	usecase usecase.IJustificationUseCase
}

func NewJustificationHandler(uc usecase.IJustificationUseCase) *JustificationHandler {
	return &JustificationHandler{usecase: uc}
}

func (h *JustificationHandler) GenerateJustification(c *gin.Context) {
	var payload request.PriceJustificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJustificationPayload.HTTPStatus, errInvalidJustificationPayload.ToHTTPError())
		return
	}
	if payload.ProposedPrice <= 0 {
		c.JSON(errInvalidJustificationPayload.HTTPStatus, errInvalidJustificationPayload.ToHTTPError())
		return
	}

	justification := h.usecase.RequestJustification(c.Request.Context(), payload.ServiceID, payload.ProposedPrice)

	c.JSON(http.StatusOK, response.PriceJustificationResponse{
		ServiceID:     payload.ServiceID,
		ProposedPrice: payload.ProposedPrice,
		Justification: justification,
	})
}
