package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solar-optimizer/internal/analysis"
	"solar-optimizer/internal/api/models"
	"solar-optimizer/internal/model"
	"solar-optimizer/internal/solar"
)

// Assumptions handles GET /api/v1/assumptions
func Assumptions(c *gin.Context) {
	c.JSON(http.StatusOK, models.AssumptionsResponse{
		Albedo:             solar.Albedo,
		STCTemperatureC:    solar.STCTemperatureC,
		CostPerKW:          analysis.CostPerKW,
		LifetimeYears:      analysis.LifetimeYears,
		CO2TonnesPerKWh:    analysis.CO2TonnesPerKWh,
		HoursPerYear:       analysis.HoursPerYear,
		DefaultSystem:      model.DefaultSystem(),
		NullTemperatureC:   model.DefaultTemperatureC,
		NullIrradiance:     model.DefaultIrradiance,
		ArchiveLagDays:     model.ArchiveLagDays,
		TrailingWindowDays: model.TrailingYearDays,
	})
}
