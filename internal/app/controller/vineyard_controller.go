package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wineworld/wineworld-backend/internal/app/query"
	"github.com/wineworld/wineworld-backend/internal/app/service"
	apierrors "github.com/wineworld/wineworld-backend/internal/errors"
	"github.com/wineworld/wineworld-backend/internal/middleware"
)

type VineyardController struct {
	vineyardService service.VineyardService
}

func NewVineyardController(vineyardService service.VineyardService) *VineyardController {
	return &VineyardController{
		vineyardService: vineyardService,
	}
}

// GetAllVineyards returns a filtered, sorted, paginated vineyard page
// GET /vineyards
func (ctrl *VineyardController) GetAllVineyards(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	opts := service.VineyardListOptions{
		Criteria: query.VineyardCriteria{
			Name:         c.Query("name"),
			Countries:    c.QueryArray("country"),
			StartRating:  queryFloat(c, "startRating"),
			EndRating:    queryFloat(c, "endRating"),
			StartReviews: queryInt(c, "startReviews"),
			EndReviews:   queryInt(c, "endReviews"),
			StartPrice:   queryInt(c, "startPrice"),
			EndPrice:     queryInt(c, "endPrice"),
		},
		Sort: c.Query("sort"),
		Page: queryPage(c),
	}

	res := ctrl.vineyardService.ListVineyards(opts)

	log.Info("Vineyards listed successfully", map[string]interface{}{
		"count": res.Length,
		"page":  res.Page,
	})

	c.JSON(http.StatusOK, res)
}

// GetVineyardByID returns a vineyard detail with its related entities
// GET /vineyards/:id
func (ctrl *VineyardController) GetVineyardByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		log.Warn("Invalid vineyard ID format", map[string]interface{}{
			"vineyard_id": idStr,
		})
		apierrors.BadRequest(c, apierrors.ValidationInvalidInput, "Invalid vineyard ID")
		return
	}

	vineyard, err := ctrl.vineyardService.GetVineyardByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrVineyardNotFound) {
			apierrors.NotFound(c, "Vineyard not found")
			return
		}
		log.Error("Failed to fetch vineyard", err, map[string]interface{}{
			"vineyard_id": id,
		})
		apierrors.InternalError(c, "")
		return
	}

	log.Info("Vineyard fetched successfully", map[string]interface{}{
		"vineyard_id": vineyard.ID,
	})

	c.JSON(http.StatusOK, vineyard)
}

// GetVineyardLimits returns the filter domain bounds and sort registry for
// vineyards
// GET /vineyards/limits
func (ctrl *VineyardController) GetVineyardLimits(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.vineyardService.GetVineyardLimits())
}
