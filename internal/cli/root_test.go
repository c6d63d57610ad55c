package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/fleetdash/internal/cli/config"
	"github.com/leapstack-labs/fleetdash/internal/fleet"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	root := NewRootCmd()
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	records := fleet.SampleRecords()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/fleet-data", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(records)
	})
	mux.HandleFunc("/api/fleet-summary", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(fleet.Summarize(records))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestReportCommand_JSON(t *testing.T) {
	srv := newBackend(t)

	out, _, err := execute(t, "report", "--base-url", srv.URL, "--output", "json")
	require.NoError(t, err)

	var payload struct {
		Fleets []string         `json:"fleets"`
		Trend  []map[string]any `json:"trend"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, []string{"F-18", "CH-147", "CP-140"}, payload.Fleets)
	assert.Len(t, payload.Trend, 4)
}

func TestReportCommand_Markdown(t *testing.T) {
	srv := newBackend(t)

	out, _, err := execute(t, "report", "--base-url", srv.URL, "--output", "markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "# Fleet Performance Report")
	assert.Contains(t, out, "| F-18 |")
}

func TestReportCommand_BackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, errOut, err := execute(t, "report", "--base-url", srv.URL, "--output", "markdown")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fleet data fetch failed")
	assert.Contains(t, errOut, "Is the backend running")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "FleetDash v"+Version)
}

func TestRootCommand_UnknownSubcommand(t *testing.T) {
	_, _, err := execute(t, "launch")
	require.Error(t, err)
}
