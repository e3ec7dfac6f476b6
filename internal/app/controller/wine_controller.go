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

type WineController struct {
	wineService service.WineService
}

func NewWineController(wineService service.WineService) *WineController {
	return &WineController{
		wineService: wineService,
	}
}

// GetAllWines returns a filtered, sorted, paginated wine page
// GET /wines
func (ctrl *WineController) GetAllWines(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	opts := service.WineListOptions{
		Criteria: query.WineCriteria{
			Name:         c.Query("name"),
			Countries:    c.QueryArray("country"),
			StartRating:  queryFloat(c, "startRating"),
			EndRating:    queryFloat(c, "endRating"),
			StartReviews: queryInt(c, "startReviews"),
			EndReviews:   queryInt(c, "endReviews"),
			Type:         c.Query("type"),
		},
		Sort: c.Query("sort"),
		Page: queryPage(c),
	}

	res := ctrl.wineService.ListWines(opts)

	log.Info("Wines listed successfully", map[string]interface{}{
		"count": res.Length,
		"page":  res.Page,
	})

	c.JSON(http.StatusOK, res)
}

// GetWineByID returns a wine detail with its related entities
// GET /wines/:id
func (ctrl *WineController) GetWineByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		log.Warn("Invalid wine ID format", map[string]interface{}{
			"wine_id": idStr,
		})
		apierrors.BadRequest(c, apierrors.ValidationInvalidInput, "Invalid wine ID")
		return
	}

	wine, err := ctrl.wineService.GetWineByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrWineNotFound) {
			apierrors.NotFound(c, "Wine not found")
			return
		}
		log.Error("Failed to fetch wine", err, map[string]interface{}{
			"wine_id": id,
		})
		apierrors.InternalError(c, "")
		return
	}

	log.Info("Wine fetched successfully", map[string]interface{}{
		"wine_id": wine.ID,
	})

	c.JSON(http.StatusOK, wine)
}

// GetWineLimits returns the filter domain bounds and sort registry for wines
// GET /wines/limits
func (ctrl *WineController) GetWineLimits(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.wineService.GetWineLimits())
}
