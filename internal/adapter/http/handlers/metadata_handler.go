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

var errInvalidMetadataPayload = pkg.NewDomainErrorSimple("INVALID_METADATA_INPUT", "Invalid metadata payload", http.StatusBadRequest)

// MetadataHandler handles project metadata and the readiness assessment.

type MetadataHandler struct {
	usecase usecase.IMetadataUseCase
}

func NewMetadataHandler(uc usecase.IMetadataUseCase) *MetadataHandler {
	return &MetadataHandler{usecase: uc}
}

// CreateMetadata validates and stores project metadata, returning the stamped
// record with its quotation code.
func (h *MetadataHandler) CreateMetadata(c *gin.Context) {
	var payload request.ProjectMetadataRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMetadataPayload.HTTPStatus, errInvalidMetadataPayload.ToHTTPError())
		return
	}

	meta, err := h.usecase.CreateMetadata(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapMetadataError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMetadata(meta))
}

func (h *MetadataHandler) GetReadinessQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, response.ReadinessQuestionsResponse{
		Questions:      usecase.ReadinessQuestions,
		RequiredScore:  6,
		TotalQuestions: len(usecase.ReadinessQuestions),
	})
}

func (h *MetadataHandler) AssessReadiness(c *gin.Context) {
	var payload request.ReadinessRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMetadataPayload.HTTPStatus, errInvalidMetadataPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.AssessReadiness(payload.Answers)
	if err != nil {
		appErr := mapMetadataError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}

func mapMetadataError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMetadata),
		errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrInvalidAnswerCount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
