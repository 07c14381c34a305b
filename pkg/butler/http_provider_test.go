package butler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistryServer(t *testing.T, handler http.HandlerFunc) (Registry, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewHTTPProvider(server.URL), server
}

func TestFindExposure(t *testing.T) {
	provider, _ := newRegistryServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exposures", r.URL.Path)
		assert.Equal(t, "LSSTCam", r.URL.Query().Get("instrument"))
		assert.Equal(t, "LC_O_20240610_000042", r.URL.Query().Get("obs_id"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode([]*ExposureRecord{
			{ObsId: "LC_O_20240610_000042", DayObs: 20240610, SeqNum: 42},
		})
	})

	exposure, err := provider.FindExposure(context.Background(), "LSSTCam", "LC_O_20240610_000042")
	require.NoError(t, err)
	assert.Equal(t, 20240610, exposure.DayObs)
	assert.Equal(t, 42, exposure.SeqNum)
}

func TestFindExposureNotFound(t *testing.T) {
	provider, _ := newRegistryServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]*ExposureRecord{})
	})

	_, err := provider.FindExposure(context.Background(), "LSSTCam", "LC_O_20240610_000042")
	assert.ErrorIs(t, err, ErrExposureNotFound)
}

func TestFindExposureDuplicates(t *testing.T) {
	provider, _ := newRegistryServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]*ExposureRecord{{}, {}})
	})

	_, err := provider.FindExposure(context.Background(), "LSSTCam", "LC_O_20240610_000042")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrExposureNotFound)
}

func TestFindExposuresQueryEncoding(t *testing.T) {
	minDayObs := 20240601
	provider, _ := newRegistryServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "LSSTCam", q.Get("instrument"))
		assert.Equal(t, "20240601", q.Get("min_day_obs"))
		assert.Equal(t, []string{"science", "calibration"}, q["observation_types"])
		assert.Equal(t, []string{"-timespan_begin", "id"}, q["order_by"])
		assert.Equal(t, "0", q.Get("offset"))
		assert.Equal(t, "50", q.Get("limit"))
		json.NewEncoder(w).Encode([]*ExposureRecord{{ObsId: "LC_O_20240610_000001"}})
	})

	records, err := provider.FindExposures(context.Background(), Query{
		Instrument:       "LSSTCam",
		MinDayObs:        &minDayObs,
		ObservationTypes: []string{"science", "calibration"},
		OrderBy:          []string{"-timespan_begin", "id"},
		Offset:           0,
		Limit:            50,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "LC_O_20240610_000001", records[0].ObsId)
}

func TestRegistryErrorStatus(t *testing.T) {
	provider, _ := newRegistryServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "registry exploded", http.StatusInternalServerError)
	})

	_, err := provider.FindExposures(context.Background(), Query{Instrument: "LSSTCam"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registry exploded")
}

func TestInstruments(t *testing.T) {
	provider, _ := newRegistryServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/instruments", r.URL.Path)
		json.NewEncoder(w).Encode([]string{"LSSTCam", "LATISS"})
	})

	instruments, err := provider.Instruments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"LSSTCam", "LATISS"}, instruments)
}
