// Package store persists finished analyses so they can be re-read, exported,
// and reused for identical requests.
package store

import (
	"context"
	"errors"
	"time"

	"solar-optimizer/internal/analysis"
	"solar-optimizer/internal/model"
	"solar-optimizer/internal/simulate"
)

var ErrNotFound = errors.New("analysis not found")

// Analysis is one stored run: the inputs, the hourly result, and its summary.
type Analysis struct {
	ID          string               `json:"id"`
	Fingerprint string               `json:"fingerprint"`
	CreatedAt   time.Time            `json:"created_at"`
	Inputs      model.AnalysisInputs `json:"inputs"`
	Result      *simulate.Result     `json:"result"`
	Report      analysis.Report      `json:"report"`
}

type Store interface {
	// Save stores a. If an analysis with the same fingerprint already exists,
	// a is overwritten with the stored copy and no new row is created.
	Save(ctx context.Context, a *Analysis) error
	Get(ctx context.Context, id string) (*Analysis, error)
	FindByFingerprint(ctx context.Context, fingerprint string) (*Analysis, error)
}
