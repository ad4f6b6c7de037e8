package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyageai/internal/services"
	"voyageai/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

func (ct *CatalogController) ListDestinations(c *gin.Context) {
	utils.RespondSuccess(c, ct.catalogService.ListDestinations(c.Request.Context()), "Destinations fetched successfully")
}

func (ct *CatalogController) GetDestinationByID(c *gin.Context) {
	destinationID := c.Param("id")
	if destinationID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	destination, err := ct.catalogService.GetDestinationByID(c.Request.Context(), destinationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destination, "Destination fetched successfully")
}

func (ct *CatalogController) GetCatalogStats(c *gin.Context) {
	utils.RespondSuccess(c, ct.catalogService.GetCatalogStats(c.Request.Context()), "Catalog stats fetched successfully")
}
