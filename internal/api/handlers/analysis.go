package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"solar-optimizer/internal/api/models"
	"solar-optimizer/internal/export"
	"solar-optimizer/internal/model"
	"solar-optimizer/internal/pipeline"
	"solar-optimizer/internal/store"
)

// AnalysisHandler runs, stores and serves production analyses.
type AnalysisHandler struct {
	analyzer *pipeline.Analyzer
	store    store.Store
	log      *slog.Logger
}

func NewAnalysisHandler(analyzer *pipeline.Analyzer, st store.Store, log *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer, store: st, log: log}
}

// Create handles POST /api/v1/analysis. An identical earlier request is
// answered from the store without fetching again.
func (h *AnalysisHandler) Create(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}
	rng, err := models.DateRange(req.StartDate, req.EndDate)
	if err != nil {
		writeError(c, err)
		return
	}
	plan, err := h.analyzer.Plan(req.Location(), req.System.ToSystem(), rng)
	if err != nil {
		writeError(c, err)
		return
	}

	ctx := c.Request.Context()
	if existing, err := h.store.FindByFingerprint(ctx, plan.Fingerprint); err == nil {
		h.log.Info("analysis reused", "id", existing.ID)
		c.JSON(http.StatusOK, toResponse(existing, true, req.Options.IncludeLedger))
		return
	}

	out, err := h.analyzer.Execute(ctx, plan)
	if err != nil {
		writeError(c, err)
		return
	}
	id := uuid.NewString()
	a := &store.Analysis{
		ID:          id,
		Fingerprint: plan.Fingerprint,
		CreatedAt:   time.Now().UTC(),
		Inputs:      plan.Inputs,
		Result:      out.Result,
		Report:      out.Report,
	}
	if err := h.store.Save(ctx, a); err != nil {
		writeError(c, fmt.Errorf("save analysis: %w", err))
		return
	}
	// Save hands back the stored copy when an identical request got there first.
	if a.ID != id {
		h.log.Info("analysis reused", "id", a.ID)
		c.JSON(http.StatusOK, toResponse(a, true, req.Options.IncludeLedger))
		return
	}
	c.JSON(http.StatusCreated, toResponse(a, false, req.Options.IncludeLedger))
}

// Get handles GET /api/v1/analysis/:id
func (h *AnalysisHandler) Get(c *gin.Context) {
	a, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toResponse(a, false, false))
}

// Hourly handles GET /api/v1/analysis/:id/hourly
func (h *AnalysisHandler) Hourly(c *gin.Context) {
	a, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": a.ID, "ledger": a.Result.Ledger})
}

// ExportCSV handles GET /api/v1/analysis/:id/export.csv
func (h *AnalysisHandler) ExportCSV(c *gin.Context) {
	a, ok := h.load(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", attachment(a.ID, "csv"))
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)
	if err := export.WriteHourlyCSV(c.Writer, a.Result.Ledger); err != nil {
		h.log.Error("csv export failed", "id", a.ID, "error", err)
	}
}

// ExportXLSX handles GET /api/v1/analysis/:id/export.xlsx
func (h *AnalysisHandler) ExportXLSX(c *gin.Context) {
	a, ok := h.load(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", attachment(a.ID, "xlsx"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)
	if err := export.WriteWorkbook(c.Writer, a.Result, a.Report); err != nil {
		h.log.Error("xlsx export failed", "id", a.ID, "error", err)
	}
}

func (h *AnalysisHandler) load(c *gin.Context) (*store.Analysis, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		badRequest(c, "INVALID_ID", "id must be a UUID")
		return nil, false
	}
	a, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	return a, true
}

func attachment(id, ext string) string {
	return fmt.Sprintf(`attachment; filename="solar-analysis-%s.%s"`, id, ext)
}

func toResponse(a *store.Analysis, reused, includeLedger bool) models.AnalysisResponse {
	resp := models.AnalysisResponse{
		ID:             a.ID,
		Status:         "completed",
		Reused:         reused,
		CreatedAt:      a.CreatedAt,
		Location:       a.Inputs.Location,
		Recommendation: a.Result.Recommendation,
		System:         a.Inputs.System,
		Window: models.TimeWindow{
			Start: a.Inputs.Range.StartString(),
			End:   a.Inputs.Range.EndString(),
		},
		Summary: models.NewSummary(a.Report),
	}
	if area, err := model.PanelArea(a.Inputs.System.SizeKW, a.Inputs.System.PanelEfficiencyPct); err == nil {
		resp.PanelAreaM2 = area
	}
	if includeLedger {
		resp.Ledger = a.Result.Ledger
	}
	return resp
}
