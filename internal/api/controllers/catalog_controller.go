package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

func (cc *CatalogController) Query(c *gin.Context) {
	filters := repositories.CatalogFilters{
		Difficulty:   c.Query("difficulty"),
		GailInterest: c.Query("gailInterest"),
	}

	if tags := c.Query("tags"); tags != "" {
		filters.Tags = strings.Split(tags, ",")
	}

	var err error
	if filters.MinDuration, err = intQuery(c, "minDuration"); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "minDuration must be a number")
		return
	}
	if filters.MaxDuration, err = intQuery(c, "maxDuration"); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "maxDuration must be a number")
		return
	}
	if filters.MaxPriority, err = intQuery(c, "maxPriority"); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "maxPriority must be a number")
		return
	}

	items := cc.catalogService.Query(filters)
	utils.RespondSuccess(c, items, "Catalog items fetched")
}

func intQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
