package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-optimizer/internal/model"
)

func TestSites_RoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "sites.json")
	in := &SiteList{UpdatedAt: "2026-10-18T00:00:00Z", Sites: []Site{
		{Name: "phoenix", Latitude: 33.45, Longitude: -112.07},
		{Name: "oslo", Latitude: 59.91, Longitude: 10.75},
	}}
	require.NoError(t, SaveSites(in, p))

	out, err := LoadSites(p)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Equal(t, model.Location{Latitude: 59.91, Longitude: 10.75}, out.Sites[1].Location())
}

func TestLoadSites_RejectsBadEntries(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"sites":[{"name":"x","latitude":120,"longitude":0}]}`), 0o644))
	_, err := LoadSites(bad)
	var inErr *model.InputError
	assert.ErrorAs(t, err, &inErr)

	unnamed := filepath.Join(dir, "unnamed.json")
	require.NoError(t, os.WriteFile(unnamed, []byte(`{"sites":[{"latitude":1,"longitude":1}]}`), 0o644))
	_, err = LoadSites(unnamed)
	assert.Error(t, err)
}

func TestDefaultSitesPath(t *testing.T) {
	t.Setenv("SITES_FILE", "")
	assert.Equal(t, "./data/sites.json", DefaultSitesPath())
	t.Setenv("SITES_FILE", "/etc/sites.json")
	assert.Equal(t, "/etc/sites.json", DefaultSitesPath())
}

func TestArchiveJSON_RoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), ArchiveFileName("sf"))
	temp := 12.5
	in := &model.ArchiveResponse{
		Timezone: "UTC",
		Hourly: model.HourlySeries{
			Time:                   []string{"2024-01-01T00:00"},
			Temperature2m:          []*float64{&temp},
			DiffuseRadiation:       []*float64{nil},
			DirectNormalIrradiance: []*float64{nil},
			ShortwaveRadiation:     []*float64{nil},
		},
	}
	require.NoError(t, SaveArchiveJSON(in, p))
	out, err := LoadArchiveJSON(p)
	require.NoError(t, err)
	samples, err := out.Samples()
	require.NoError(t, err)
	assert.Equal(t, 12.5, samples[0].TemperatureC)
}
