package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	request "mutawazi_proposals/internal/adapter/http/dto/request"
	response "mutawazi_proposals/internal/adapter/http/dto/response"
	"mutawazi_proposals/internal/usecase"
	"mutawazi_proposals/pkg"
)

var errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)

// ProposalHandler handles proposal assembly and retrieval requests.

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// CreateProposal assembles a financial proposal from priced items and payment
// terms and stores it under a fresh quotation code.
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.FinalProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.CreateProposal(c.Request.Context(), payload.ResolveItems(), payload.ResolveTerms())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProposal(proposal))
}

func (h *ProposalHandler) GetProposal(c *gin.Context) {
	record, err := h.usecase.GetByCode(c.Request.Context(), c.Param("quotation_code"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStoredProposal(record))
}

func (h *ProposalHandler) ListProposals(c *gin.Context) {
	codes, err := h.usecase.ListCodes(c.Request.Context())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposalCodes(codes))
}

func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	code := c.Param("quotation_code")
	if err := h.usecase.DeleteByCode(c.Request.Context(), code); err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.DeleteProposalResponse{
		Success: true,
		Message: fmt.Sprintf("Proposal %s deleted", code),
	})
}

// GetProposalSummary renders the stored record as human-readable text.
func (h *ProposalHandler) GetProposalSummary(c *gin.Context) {
	summary, err := h.usecase.SummaryByCode(c.Request.Context(), c.Param("quotation_code"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SummaryResponse{Summary: summary})
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentTermMismatch):
		return pkg.NewDomainErrorSimple("PAYMENT_TERM_MISMATCH", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLineItem),
		errors.Is(err, usecase.ErrInvalidPaymentTerm),
		errors.Is(err, usecase.ErrNoLineItems),
		errors.Is(err, usecase.ErrNoPaymentTerms),
		errors.Is(err, usecase.ErrInvalidQuotationCode):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
