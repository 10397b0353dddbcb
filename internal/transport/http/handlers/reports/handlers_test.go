package reportshandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"workforce/internal/analytics"
	"workforce/internal/platform/metrics"
	"workforce/internal/transport/http/api"
)

type fakeSource struct {
	snap analytics.Snapshot
	err  error
}

func (f *fakeSource) Load(ctx context.Context) (analytics.Snapshot, error) {
	return f.snap, f.err
}

func testSnapshot() analytics.Snapshot {
	terminated := time.Date(2022, 6, 30, 0, 0, 0, 0, time.UTC)
	return analytics.Snapshot{
		Departments: []analytics.Department{{ID: "d1", Name: "Engineering"}},
		Projects:    []analytics.Project{{ID: "d1", Name: "Platform"}},
		Employees: []analytics.Employee{
			{ID: "e1", Name: "Amara", DepartmentID: "d1", HireDate: time.Date(2018, 3, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "e2", Name: "Bo", DepartmentID: "d1", HireDate: time.Date(2017, 1, 10, 0, 0, 0, 0, time.UTC), TerminationDate: &terminated},
		},
		Reviews: []analytics.PerformanceReview{
			{ID: "r1", EmployeeID: "e1", Score: 90},
			{ID: "r2", EmployeeID: "e1", Score: 80},
			{ID: "r3", EmployeeID: "e2", Score: 70},
		},
		Salaries: []analytics.Salary{
			{EmployeeID: "e1", Salary: 90000},
			{EmployeeID: "e2", Salary: 60000},
		},
	}
}

func newTestRouter(source *fakeSource, collector *metrics.Collector) http.Handler {
	router := chi.NewRouter()
	handler := NewHandler(source, collector, 5*time.Second)
	router.Route("/api/v1", handler.RegisterRoutes)
	return router
}

func TestHandleWorkforceJSON(t *testing.T) {
	collector := metrics.New()
	router := newTestRouter(&fakeSource{snap: testSnapshot()}, collector)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/workforce", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope api.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if !envelope.Success {
		t.Fatalf("expected success, got %+v", envelope.Error)
	}
	rows, ok := envelope.Data.([]any)
	if !ok || len(rows) == 0 {
		t.Fatalf("expected report rows, got %T", envelope.Data)
	}

	snap := collector.Snapshot()
	if snap["reportsBuilt"] != uint64(1) {
		t.Fatalf("expected one report recorded, got %v", snap["reportsBuilt"])
	}
}

func TestHandleWorkforceJSONSourceFailure(t *testing.T) {
	router := newTestRouter(&fakeSource{err: errors.New("connection refused")}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/workforce", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var envelope api.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if envelope.Success || envelope.Error == nil || envelope.Error.Code != "snapshot_failed" {
		t.Fatalf("expected snapshot_failed error, got %+v", envelope)
	}
}

func TestHandleWorkforceCSV(t *testing.T) {
	router := newTestRouter(&fakeSource{snap: testSnapshot()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/workforce.csv", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("expected text/csv, got %s", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "department_name,") {
		t.Fatalf("expected csv header, got %q", rec.Body.String()[:40])
	}
}

func TestHandleWorkforcePDF(t *testing.T) {
	router := newTestRouter(&fakeSource{snap: testSnapshot()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/workforce.pdf", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %s", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Fatal("expected pdf payload")
	}
}
