package solver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vaktplan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDecodesSchedule(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var config models.ScheduleConfig
		require.NoError(t, json.NewDecoder(r.Body).Decode(&config))
		assert.Equal(t, "2026-08-31", config.StartDate)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"updated_schedule": {"schedules": [{"room": "Tjørnin", "weeks": {
				"week1": {"monday": {"07:30-08:00": ["J"]}, "fridayEarlyLeave": "none"}
			}}]}
		}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, 5*time.Second)
	resp, err := client.Generate(context.Background(), models.ScheduleConfig{StartDate: "2026-08-31"})
	require.NoError(t, err)
	require.NotNil(t, resp.UpdatedSchedule)
	require.Len(t, resp.UpdatedSchedule.Schedules, 1)

	ds := resp.UpdatedSchedule.Schedules[0].Weeks["week1"]
	require.NotNil(t, ds)
	assert.Equal(t, []string{"J"}, ds.StaffFor("monday", "07:30-08:00"))
	assert.Equal(t, "none", ds.FridayEarlyLeave)
}

func TestValidatePostsToValidatePath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/validate/", r.URL.Path)

		var req ValidateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 37.0, req.TargetHours["J"])

		w.Write([]byte(`{"violations": {"summary": {"total_violations": 1}}, "discrepancies": []}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, 5*time.Second)
	resp, err := client.Validate(context.Background(), ValidateRequest{
		TargetHours: models.TargetHours{"J": 37},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Violations)
	require.NotNil(t, resp.Violations.Summary)
	assert.Equal(t, 1, resp.Violations.Summary.TotalViolations)
}

func TestErrorEnvelopeIsSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error": "roster has no rooms"}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, 5*time.Second)
	_, err := client.Generate(context.Background(), models.ScheduleConfig{})
	require.Error(t, err)
	assert.EqualError(t, err, "roster has no rooms")
}

func TestUnparseableErrorBodyFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>boom</html>"))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, 5*time.Second)

	_, err := client.Generate(context.Background(), models.ScheduleConfig{})
	assert.EqualError(t, err, "Failed to generate schedule.")

	_, err = client.Validate(context.Background(), ValidateRequest{})
	assert.EqualError(t, err, "Failed to update schedule and re-evaluate violations.")
}
