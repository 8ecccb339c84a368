package autosave

import (
	"errors"
	"testing"
	"time"

	"github.com/bethropolis/tidepad/internal/plugin/plugintest"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		in      interface{}
		want    time.Duration
		wantErr bool
	}{
		{"30s", 30 * time.Second, false},
		{int64(5), 5 * time.Second, false},
		{1.5, 1500 * time.Millisecond, false},
		{"soon", 0, true},
		{"-1s", 0, true},
		{true, 0, true},
	}
	for _, tt := range tests {
		got, err := parseInterval(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Fatalf("parseInterval(%v)=%v,%v want %v,err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestInitializeReadsConfig(t *testing.T) {
	api := plugintest.New()
	api.Config["autosave"] = map[string]interface{}{"enabled": false, "interval": "10s"}
	p := New()
	if err := p.Initialize(api); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if p.Enabled() || p.Interval() != 10*time.Second {
		t.Fatalf("enabled=%v interval=%v", p.Enabled(), p.Interval())
	}
	if err := p.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}

func TestSaveIfModified(t *testing.T) {
	api := plugintest.New()
	p := New()
	p.api = api

	p.saveIfModified()
	if api.Saves != 0 {
		t.Fatalf("clean document should not be saved")
	}

	api.Modified = true
	p.saveIfModified()
	if api.Saves != 0 {
		t.Fatalf("untitled document should not be saved")
	}

	api.Path = "/tmp/note.txt"
	p.saveIfModified()
	if api.Saves != 1 || api.Modified {
		t.Fatalf("saves=%d modified=%v", api.Saves, api.Modified)
	}

	api.Modified = true
	api.SaveErr = errors.New("disk full")
	p.saveIfModified()
	if len(api.Status) == 0 || api.Status[len(api.Status)-1] != "Auto-save failed: disk full" {
		t.Fatalf("status=%v", api.Status)
	}
}

func TestLoopPostsToEventLoop(t *testing.T) {
	api := plugintest.New()
	api.Config["autosave"] = map[string]interface{}{"enabled": true, "interval": "5ms"}
	api.Modified = true
	api.Path = "/tmp/note.txt"

	p := New()
	if err := p.Initialize(api); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if !p.Enabled() || p.Interval() != 5*time.Millisecond {
		t.Fatalf("enabled=%v interval=%v while loop runs", p.Enabled(), p.Interval())
	}
	deadline := time.Now().Add(2 * time.Second)
	for api.Pending() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if err := p.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if api.Saves != 0 {
		t.Fatalf("loop must not save off the event loop")
	}
	api.RunPosted()
	if api.Saves == 0 {
		t.Fatalf("posted save did not run")
	}
}
