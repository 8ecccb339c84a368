package plugin

import (
	"errors"
	"reflect"
	"testing"
)

type stubPlugin struct {
	name    string
	initErr error
	log     *[]string
}

func (s *stubPlugin) Name() string { return s.name }

func (s *stubPlugin) Initialize(EditorAPI) error {
	*s.log = append(*s.log, "init "+s.name)
	return s.initErr
}

func (s *stubPlugin) Shutdown() error {
	*s.log = append(*s.log, "shutdown "+s.name)
	return nil
}

func TestManagerLifecycleOrder(t *testing.T) {
	var log []string
	m := NewManager()
	for _, p := range []*stubPlugin{
		{name: "b", log: &log},
		{name: "a", log: &log, initErr: errors.New("nope")},
		{name: "c", log: &log},
	} {
		if err := m.Register(p); err != nil {
			t.Fatalf("Register: %v", err)
		}
	}

	if failed := m.InitializePlugins(nil); failed != 1 {
		t.Fatalf("failed=%d, want 1", failed)
	}
	m.ShutdownPlugins()

	want := []string{"init b", "init a", "init c", "shutdown b", "shutdown a", "shutdown c"}
	if !reflect.DeepEqual(log, want) {
		t.Fatalf("log=%v, want %v", log, want)
	}
}

func TestManagerRejectsDuplicates(t *testing.T) {
	var log []string
	m := NewManager()
	if err := m.Register(&stubPlugin{name: "x", log: &log}); err != nil {
		t.Fatal(err)
	}
	if err := m.Register(&stubPlugin{name: "x", log: &log}); err == nil {
		t.Fatalf("expected duplicate error")
	}
	if err := m.Register(&stubPlugin{log: &log}); err == nil {
		t.Fatalf("expected empty name error")
	}
	if _, ok := m.GetPlugin("x"); !ok {
		t.Fatalf("GetPlugin(x) missing")
	}
}
