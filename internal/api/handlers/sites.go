package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"solar-optimizer/internal/api/models"
	"solar-optimizer/internal/data"
	"solar-optimizer/internal/pipeline"
)

// SitesHandler serves the saved site list and ranks its sites.
type SitesHandler struct {
	path     string
	analyzer *pipeline.Analyzer
}

func NewSitesHandler(path string, analyzer *pipeline.Analyzer) *SitesHandler {
	return &SitesHandler{path: path, analyzer: analyzer}
}

// List handles GET /api/v1/sites
func (h *SitesHandler) List(c *gin.Context) {
	list, err := data.LoadSites(h.path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SITES_LOAD_ERROR",
				Message: fmt.Sprintf("Failed to load sites: %v", err),
			},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated_at": list.UpdatedAt, "sites": list.Sites})
}

// Rank handles POST /api/v1/rank
func (h *SitesHandler) Rank(c *gin.Context) {
	var req models.RankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}
	list, err := data.LoadSites(h.path)
	if err != nil {
		writeError(c, err)
		return
	}
	sites, missing := selectSites(list.Sites, req.Sites)
	if len(missing) > 0 {
		badRequest(c, "UNKNOWN_SITE", fmt.Sprintf("unknown sites: %v", missing))
		return
	}
	if len(sites) == 0 {
		badRequest(c, "NO_SITES", "no sites to rank")
		return
	}
	rng, err := models.DateRange(req.StartDate, req.EndDate)
	if err != nil {
		writeError(c, err)
		return
	}

	yields, err := h.analyzer.Rank(c.Request.Context(), sites, req.System.ToSystem(), rng)
	if err != nil {
		writeError(c, err)
		return
	}
	resp := models.RankResponse{Rankings: make([]models.Ranking, len(yields))}
	for i, y := range yields {
		resp.Rankings[i] = models.Ranking{
			Rank:              i + 1,
			Name:              y.Name,
			Location:          y.Location,
			Orientation:       y.Orientation,
			AnnualEnergyKWh:   y.AnnualEnergyKWh,
			SpecificYield:     y.SpecificYield,
			CapacityFactorPct: y.CapacityFactorPct,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// selectSites keeps the named sites in request order; no names means all.
func selectSites(all []data.Site, names []string) (selected []data.Site, missing []string) {
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]data.Site, len(all))
	for _, s := range all {
		byName[s.Name] = s
	}
	for _, n := range names {
		s, ok := byName[n]
		if !ok {
			missing = append(missing, n)
			continue
		}
		selected = append(selected, s)
	}
	return selected, missing
}
