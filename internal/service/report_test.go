package service_test

import (
	"testing"
	"time"

	"github.com/teamtrack/tracker/internal/service"
)

func TestReportService_Start_InvalidInterval(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewReportService(db.Scores(), db.Problems(), time.Hour)

	if err := svc.Start(0); err == nil {
		t.Fatal("expected error for zero interval")
	}
	if err := svc.Start(-time.Minute); err == nil {
		t.Fatal("expected error for negative interval")
	}
}

func TestReportService_StartStop(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewReportService(db.Scores(), db.Problems(), time.Hour)

	if err := svc.Start(time.Hour); err != nil {
		t.Fatalf("Start: %v", err)
	}
	// Stop blocks until the scheduler drains.
	svc.Stop()
}
