package theralink

import (
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

func TestProgramMonitor_EmitsNewAndUpdated(t *testing.T) {
	var polls atomic.Int32
	_, client := newTestServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/clients/c-1/programs" {
			t.Errorf("path = %s", r.URL.Path)
		}
		switch polls.Add(1) {
		case 1:
			w.Write([]byte(`{"success":true,"data":[{"id":"p-1","name":"Knee Rehab","updatedAt":"2026-08-01T10:00:00Z"}]}`))
		default:
			// p-1 updated, p-2 new
			w.Write([]byte(`{"success":true,"data":[
				{"id":"p-1","name":"Knee Rehab v2","updatedAt":"2026-08-02T10:00:00Z"},
				{"id":"p-2","name":"Shoulder Mobility","updatedAt":"2026-08-02T09:00:00Z"}
			]}`))
		}
	}))

	events := make(chan *Program, 16)
	monitor := client.MonitorClientPrograms("c-1", WithMonitorInterval(20*time.Millisecond))
	monitor.OnChange(func(p *Program) { events <- p })
	monitor.Start()
	defer monitor.Stop()

	seen := map[string]int{}
	deadline := time.After(3 * time.Second)
	for len(seen) < 2 || seen["p-1"] < 2 {
		select {
		case p := <-events:
			seen[p.ID]++
		case <-deadline:
			t.Fatalf("timed out waiting for events, seen = %v", seen)
		}
	}

	// p-1: initial + update; p-2: once.
	if seen["p-1"] < 2 {
		t.Errorf("p-1 events = %d, want at least 2", seen["p-1"])
	}
	if seen["p-2"] < 1 {
		t.Errorf("p-2 events = %d, want at least 1", seen["p-2"])
	}
}

func TestProgramMonitor_UnchangedProgramsNotReemitted(t *testing.T) {
	_, client := newTestServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[{"id":"p-1","name":"Knee Rehab","updatedAt":"2026-08-01T10:00:00Z"}]}`))
	}))

	var emits atomic.Int32
	monitor := client.MonitorClientPrograms("c-1", WithMonitorInterval(10*time.Millisecond))
	monitor.OnChange(func(p *Program) { emits.Add(1) })
	monitor.Start()

	time.Sleep(200 * time.Millisecond)
	monitor.Stop()

	if got := emits.Load(); got != 1 {
		t.Errorf("emits = %d, want 1 for an unchanged program", got)
	}
}

func TestProgramMonitor_StopHaltsPolling(t *testing.T) {
	var polls atomic.Int32
	_, client := newTestServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls.Add(1)
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))

	monitor := client.MonitorClientPrograms("c-1", WithMonitorInterval(10*time.Millisecond))
	monitor.Start()
	time.Sleep(50 * time.Millisecond)
	monitor.Stop()

	settled := polls.Load()
	time.Sleep(100 * time.Millisecond)
	if got := polls.Load(); got != settled {
		t.Errorf("polls after Stop: %d -> %d", settled, got)
	}

	// Stop is idempotent.
	monitor.Stop()
}

func TestProgramMonitor_ErrorsReported(t *testing.T) {
	_, client := newTestServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"success":false,"error":{"code":"FORBIDDEN","message":"not your client"}}`))
	}))

	errs := make(chan error, 16)
	monitor := client.MonitorClientPrograms("c-1",
		WithMonitorInterval(10*time.Millisecond),
		WithMonitorErrorHandler(func(err error) { errs <- err }),
	)
	monitor.Start()
	defer monitor.Stop()

	select {
	case err := <-errs:
		if KindOf(err) != KindAuthorization {
			t.Errorf("kind = %s, want AuthorizationError", KindOf(err))
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no error reported")
	}
}
