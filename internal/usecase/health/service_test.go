package health

import (
	"context"
	"errors"
	"testing"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

type fakeChecker struct{ err error }

func (f fakeChecker) HealthCheck(context.Context) error { return f.err }

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(fakePinger{}, fakeChecker{})

	report := svc.Check(context.Background())

	if report.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, report.Status)
	}
	if report.Checks["backend"] != "ok" || report.Checks["embedding"] != "ok" {
		t.Errorf("unexpected checks: %v", report.Checks)
	}
}

func TestCheck_BackendDown(t *testing.T) {
	svc := New(fakePinger{err: errors.New("connection refused")}, fakeChecker{})

	report := svc.Check(context.Background())

	if report.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, report.Status)
	}
	if report.Checks["backend"] != "error" {
		t.Errorf("expected backend error, got %v", report.Checks)
	}
	if report.Checks["embedding"] != "ok" {
		t.Errorf("expected embedding ok, got %v", report.Checks)
	}
}

func TestCheck_NilEmbeddingChecker(t *testing.T) {
	svc := New(fakePinger{}, nil)

	report := svc.Check(context.Background())

	if report.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, report.Status)
	}
	if _, ok := report.Checks["embedding"]; ok {
		t.Error("embedding check should be absent when no checker is configured")
	}
}
