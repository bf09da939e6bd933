package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solar-optimizer/internal/api/models"
	"solar-optimizer/internal/search"
	"solar-optimizer/internal/solar"
)

// OrientationHandler serves the latitude rule and the clear-sky grid search.
type OrientationHandler struct {
	// ClearSkyYear is the calendar year used for synthetic search weather.
	ClearSkyYear int
}

func NewOrientationHandler(clearSkyYear int) *OrientationHandler {
	return &OrientationHandler{ClearSkyYear: clearSkyYear}
}

// Get handles GET /api/v1/orientation
func (h *OrientationHandler) Get(c *gin.Context) {
	var q models.LocationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}
	loc := q.Location()
	if err := loc.Validate(); err != nil {
		writeError(c, err)
		return
	}
	rec := solar.OptimalOrientation(loc.Latitude)
	c.JSON(http.StatusOK, models.OrientationResponse{
		Location:    loc,
		Orientation: rec.Orientation,
		Climate:     rec.Climate,
	})
}

// Search handles GET /api/v1/orientation/search
func (h *OrientationHandler) Search(c *gin.Context) {
	var q models.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}
	loc := q.Location()
	if err := loc.Validate(); err != nil {
		writeError(c, err)
		return
	}
	weather := search.ClearSkyYear(loc.Latitude, h.ClearSkyYear, nil)
	res, err := search.Optimize(c.Request.Context(), loc, weather, search.Params{
		AzimuthStep: q.AzimuthStep,
		TiltStep:    q.TiltStep,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
