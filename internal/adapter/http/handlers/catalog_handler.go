package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "mutawazi_proposals/internal/adapter/http/dto/response"
	"mutawazi_proposals/internal/domain/entities"
	"mutawazi_proposals/pkg"
)

// CatalogHandler serves the read-only services catalog.

type CatalogHandler struct {
	catalog entities.ServiceCatalog
}

func NewCatalogHandler(catalog entities.ServiceCatalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(h.catalog))
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	service, ok := h.catalog.GetByID(c.Param("service_id"))
	if !ok {
		appErr := pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, service)
}
