package data

import (
	"context"
	"fmt"
	"path/filepath"

	"solar-optimizer/internal/model"
)

// ArchiveFile serves samples from one saved archive, whatever the params.
type ArchiveFile struct {
	Path string
}

func (f ArchiveFile) FetchSamples(_ context.Context, _ ArchiveParams) ([]model.WeatherSample, error) {
	return loadSamples(f.Path)
}

// ArchiveDir serves samples from a directory of saved archives, one file per
// named site (see ArchiveFileName). Params are matched to a site by location.
type ArchiveDir struct {
	Dir   string
	Sites []Site
}

func (d ArchiveDir) FetchSamples(_ context.Context, params ArchiveParams) ([]model.WeatherSample, error) {
	for _, s := range d.Sites {
		if s.Location() == params.Location {
			return loadSamples(filepath.Join(d.Dir, ArchiveFileName(s.Name)))
		}
	}
	return nil, fmt.Errorf("no saved archive for %.4f,%.4f in %s",
		params.Location.Latitude, params.Location.Longitude, d.Dir)
}

func loadSamples(path string) ([]model.WeatherSample, error) {
	resp, err := LoadArchiveJSON(path)
	if err != nil {
		return nil, err
	}
	samples, err := resp.Samples()
	if err != nil {
		return nil, &FetchError{Code: CodeMalformedPayload, Message: "inconsistent archive " + path, Err: err}
	}
	return samples, nil
}
