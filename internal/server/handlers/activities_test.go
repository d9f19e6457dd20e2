package handlers_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/mergington-high/activities/internal/config"
	"github.com/mergington-high/activities/internal/registry"
	"github.com/mergington-high/activities/internal/server"
)

// newTestServer wires a fresh registry into the full router (middleware
// included) so the tests exercise the same stack as production requests.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.ServerEnvironment{
		Environment:        "test",
		Host:               "127.0.0.1",
		Port:               8080,
		RequestTimeout:     10 * time.Second,
		MaxRequestBodySize: 65536,
		// rate limiting disabled so loops in tests cannot trip it
		RateLimitRPS: 0,
	}

	reg := registry.New(registry.DefaultActivities())
	srv := server.NewServer(reg, cfg, slog.New(slog.DiscardHandler))
	return srv.Router()
}

func doRequest(t *testing.T, router http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func listActivities(t *testing.T, router http.Handler) map[string]registry.Activity {
	t.Helper()
	rr := doRequest(t, router, "GET", "/activities")
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /activities status = %d, want %d", rr.Code, http.StatusOK)
	}
	var activities map[string]registry.Activity
	decodeBody(t, rr, &activities)
	return activities
}

func TestListActivities(t *testing.T) {
	router := newTestServer(t)

	rr := doRequest(t, router, "GET", "/activities")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var activities map[string]registry.Activity
	decodeBody(t, rr, &activities)

	if len(activities) == 0 {
		t.Fatal("no activities returned")
	}

	chess, ok := activities["Chess Club"]
	if !ok {
		t.Fatal("Chess Club missing from response")
	}
	if chess.Description == "" || chess.Schedule == "" || chess.MaxParticipants == 0 {
		t.Errorf("Chess Club record incomplete: %+v", chess)
	}
	for _, email := range []string{"michael@mergington.edu", "daniel@mergington.edu"} {
		if !slices.Contains(chess.Participants, email) {
			t.Errorf("Chess Club participants missing %s", email)
		}
	}

	// no duplicate participant per activity
	for name, activity := range activities {
		seen := make(map[string]bool, len(activity.Participants))
		for _, email := range activity.Participants {
			if seen[email] {
				t.Errorf("activity %q has duplicate participant %q", name, email)
			}
			seen[email] = true
		}
	}
}

func TestSignup(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantDetail string
	}{
		{
			name:       "new participant",
			target:     "/activities/Chess%20Club/signup?email=newstudent@mergington.edu",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown activity",
			target:     "/activities/Nonexistent%20Activity/signup?email=student@mergington.edu",
			wantStatus: http.StatusNotFound,
			wantDetail: "Activity not found",
		},
		{
			name:       "duplicate email",
			target:     "/activities/Chess%20Club/signup?email=michael@mergington.edu",
			wantStatus: http.StatusBadRequest,
			wantDetail: "already signed up",
		},
		{
			name:       "missing email",
			target:     "/activities/Chess%20Club/signup",
			wantStatus: http.StatusBadRequest,
			wantDetail: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestServer(t)

			rr := doRequest(t, router, "POST", tt.target)
			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", rr.Code, tt.wantStatus, rr.Body.String())
			}

			if tt.wantDetail != "" {
				var errResp registry.ErrorResponse
				decodeBody(t, rr, &errResp)
				if !strings.Contains(errResp.Detail, tt.wantDetail) {
					t.Errorf("detail = %q, want substring %q", errResp.Detail, tt.wantDetail)
				}
			}
		})
	}
}

func TestSignupSuccessMessageAndEffect(t *testing.T) {
	router := newTestServer(t)
	email := "x@e.edu"

	rr := doRequest(t, router, "POST", "/activities/Chess%20Club/signup?email="+email)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp registry.MessageResponse
	decodeBody(t, rr, &resp)
	if !strings.Contains(resp.Message, email) || !strings.Contains(resp.Message, "Chess Club") {
		t.Errorf("message = %q, want it to reference the email and activity", resp.Message)
	}

	activities := listActivities(t, router)
	if !slices.Contains(activities["Chess Club"].Participants, email) {
		t.Errorf("participant %q not visible in GET /activities", email)
	}

	// immediate re-signup with the same email must conflict
	rr = doRequest(t, router, "POST", "/activities/Chess%20Club/signup?email="+email)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("re-signup status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	var errResp registry.ErrorResponse
	decodeBody(t, rr, &errResp)
	if !strings.Contains(errResp.Detail, "already signed up") {
		t.Errorf("detail = %q, want substring %q", errResp.Detail, "already signed up")
	}
}

func TestSignupMultipleActivities(t *testing.T) {
	router := newTestServer(t)
	email := "student@mergington.edu"

	for _, target := range []string{
		"/activities/Chess%20Club/signup?email=" + email,
		"/activities/Programming%20Class/signup?email=" + email,
	} {
		rr := doRequest(t, router, "POST", target)
		if rr.Code != http.StatusOK {
			t.Fatalf("POST %s status = %d, want %d", target, rr.Code, http.StatusOK)
		}
	}

	activities := listActivities(t, router)
	for _, name := range []string{"Chess Club", "Programming Class"} {
		if !slices.Contains(activities[name].Participants, email) {
			t.Errorf("%s participants missing %s", name, email)
		}
	}
}

func TestUnregister(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantDetail string
	}{
		{
			name:       "existing participant",
			target:     "/activities/Chess%20Club/unregister?email=michael@mergington.edu",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown activity",
			target:     "/activities/Nonexistent%20Activity/unregister?email=student@mergington.edu",
			wantStatus: http.StatusNotFound,
			wantDetail: "Activity not found",
		},
		{
			name:       "non-participant",
			target:     "/activities/Chess%20Club/unregister?email=stranger@mergington.edu",
			wantStatus: http.StatusBadRequest,
			wantDetail: "not registered",
		},
		{
			name:       "missing email",
			target:     "/activities/Chess%20Club/unregister",
			wantStatus: http.StatusBadRequest,
			wantDetail: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestServer(t)

			rr := doRequest(t, router, "POST", tt.target)
			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", rr.Code, tt.wantStatus, rr.Body.String())
			}

			if tt.wantDetail != "" {
				var errResp registry.ErrorResponse
				decodeBody(t, rr, &errResp)
				if !strings.Contains(errResp.Detail, tt.wantDetail) {
					t.Errorf("detail = %q, want substring %q", errResp.Detail, tt.wantDetail)
				}
			}
		})
	}
}

func TestUnregisterDecreasesParticipantCount(t *testing.T) {
	router := newTestServer(t)

	before := len(listActivities(t, router)["Chess Club"].Participants)

	rr := doRequest(t, router, "POST", "/activities/Chess%20Club/unregister?email=michael@mergington.edu")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp registry.MessageResponse
	decodeBody(t, rr, &resp)
	if !strings.Contains(resp.Message, "Unregistered") {
		t.Errorf("message = %q, want it to contain %q", resp.Message, "Unregistered")
	}

	after := len(listActivities(t, router)["Chess Club"].Participants)
	if after != before-1 {
		t.Errorf("participant count = %d, want %d", after, before-1)
	}
}

func TestSignupUnregisterSignupCycle(t *testing.T) {
	router := newTestServer(t)
	email := "workflow@mergington.edu"

	signup := "/activities/Chess%20Club/signup?email=" + email
	unregister := "/activities/Chess%20Club/unregister?email=" + email

	for i := range 3 {
		rr := doRequest(t, router, "POST", signup)
		if rr.Code != http.StatusOK {
			t.Fatalf("cycle %d: signup status = %d, want %d", i, rr.Code, http.StatusOK)
		}
		if !slices.Contains(listActivities(t, router)["Chess Club"].Participants, email) {
			t.Fatalf("cycle %d: participant missing after signup", i)
		}

		rr = doRequest(t, router, "POST", unregister)
		if rr.Code != http.StatusOK {
			t.Fatalf("cycle %d: unregister status = %d, want %d", i, rr.Code, http.StatusOK)
		}
		if slices.Contains(listActivities(t, router)["Chess Club"].Participants, email) {
			t.Fatalf("cycle %d: participant still present after unregister", i)
		}
	}
}

func TestHealth(t *testing.T) {
	router := newTestServer(t)

	rr := doRequest(t, router, "GET", "/health")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if body := rr.Body.String(); body != "OK" {
		t.Errorf("body = %q, want %q", body, "OK")
	}
}

func TestVersion(t *testing.T) {
	router := newTestServer(t)

	rr := doRequest(t, router, "GET", "/version")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp struct {
		Version string `json:"version"`
		Service string `json:"service"`
	}
	decodeBody(t, rr, &resp)
	if resp.Service != "activities-server" {
		t.Errorf("service = %q, want %q", resp.Service, "activities-server")
	}
	if resp.Version == "" {
		t.Error("version is empty")
	}
}
