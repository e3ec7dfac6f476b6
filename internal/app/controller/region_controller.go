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

type RegionController struct {
	regionService service.RegionService
}

func NewRegionController(regionService service.RegionService) *RegionController {
	return &RegionController{
		regionService: regionService,
	}
}

// GetAllRegions returns a filtered, sorted, paginated region page
// GET /regions
func (ctrl *RegionController) GetAllRegions(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	opts := service.RegionListOptions{
		Criteria: query.RegionCriteria{
			Name:         c.Query("name"),
			Countries:    c.QueryArray("country"),
			StartRating:  queryFloat(c, "startRating"),
			EndRating:    queryFloat(c, "endRating"),
			StartReviews: queryInt(c, "startReviews"),
			EndReviews:   queryInt(c, "endReviews"),
			Tags:         c.QueryArray("tags"),
			TripTypes:    c.QueryArray("tripTypes"),
		},
		Sort: c.Query("sort"),
		Page: queryPage(c),
	}

	res := ctrl.regionService.ListRegions(opts)

	log.Info("Regions listed successfully", map[string]interface{}{
		"count": res.Length,
		"page":  res.Page,
	})

	c.JSON(http.StatusOK, res)
}

// GetRegionByID returns a region detail with its related entities
// GET /regions/:id
func (ctrl *RegionController) GetRegionByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		log.Warn("Invalid region ID format", map[string]interface{}{
			"region_id": idStr,
		})
		apierrors.BadRequest(c, apierrors.ValidationInvalidInput, "Invalid region ID")
		return
	}

	region, err := ctrl.regionService.GetRegionByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrRegionNotFound) {
			apierrors.NotFound(c, "Region not found")
			return
		}
		log.Error("Failed to fetch region", err, map[string]interface{}{
			"region_id": id,
		})
		apierrors.InternalError(c, "")
		return
	}

	log.Info("Region fetched successfully", map[string]interface{}{
		"region_id": region.ID,
	})

	c.JSON(http.StatusOK, region)
}

// GetRegionLimits returns the filter domain bounds and sort registry for
// regions
// GET /regions/limits
func (ctrl *RegionController) GetRegionLimits(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.regionService.GetRegionLimits())
}
