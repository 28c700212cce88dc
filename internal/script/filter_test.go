package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/gestureflow/internal/gesture"
)

func TestFilterAbsorbsByType(t *testing.T) {
	f, err := NewFilter(`
function filter(ev)
  return ev.type == "other"
end
`)
	if err != nil {
		t.Fatalf("NewFilter() error = %v", err)
	}
	defer f.Close()

	absorb, err := f.Absorb(gesture.New(gesture.TypeOther))
	if err != nil {
		t.Fatalf("Absorb() error = %v", err)
	}
	if !absorb {
		t.Error("Absorb(other) = false, want true")
	}

	absorb, err = f.Absorb(gesture.New(gesture.TypeScrollUpdate))
	if err != nil {
		t.Fatalf("Absorb() error = %v", err)
	}
	if absorb {
		t.Error("Absorb(scroll-update) = true, want false")
	}
}

func TestFilterSeesEventFields(t *testing.T) {
	f, err := NewFilter(`
function filter(ev)
  return ev.dy > 5 and ev.x == 10
end
`)
	if err != nil {
		t.Fatalf("NewFilter() error = %v", err)
	}
	defer f.Close()

	ev := gesture.New(gesture.TypeScrollUpdate)
	ev.X = 10
	ev.DeltaY = 6
	absorb, err := f.Absorb(ev)
	if err != nil {
		t.Fatalf("Absorb() error = %v", err)
	}
	if !absorb {
		t.Error("Absorb() = false, want true for matching fields")
	}
}

func TestFilterMissingFunction(t *testing.T) {
	if _, err := NewFilter(`x = 1`); !errors.Is(err, ErrNoFilterFunc) {
		t.Errorf("NewFilter() error = %v, want ErrNoFilterFunc", err)
	}
}

func TestFilterSyntaxError(t *testing.T) {
	if _, err := NewFilter(`function filter(`); err == nil {
		t.Error("NewFilter() error = nil, want syntax error")
	}
}

func TestFilterRuntimeErrorDoesNotAbsorb(t *testing.T) {
	f, err := NewFilter(`
function filter(ev)
  error("boom")
end
`)
	if err != nil {
		t.Fatalf("NewFilter() error = %v", err)
	}
	defer f.Close()

	absorb, err := f.Absorb(gesture.New(gesture.TypeScrollBegin))
	if err == nil {
		t.Error("Absorb() error = nil, want script error")
	}
	if absorb {
		t.Error("Absorb() = true on script error, want false")
	}
}

func TestFilterSandboxBlocksOS(t *testing.T) {
	f, err := NewFilter(`
function filter(ev)
  return os ~= nil and os.execute ~= nil
end
`)
	if err != nil {
		t.Fatalf("NewFilter() error = %v", err)
	}
	defer f.Close()

	absorb, err := f.Absorb(gesture.New(gesture.TypeOther))
	if err != nil {
		t.Fatalf("Absorb() error = %v", err)
	}
	if absorb {
		t.Error("sandbox exposes os.execute")
	}
}

func TestNewFilterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filter.lua")
	src := "function filter(ev)\n  return ev.type == \"pinch-begin\"\nend\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := NewFilterFile(path)
	if err != nil {
		t.Fatalf("NewFilterFile() error = %v", err)
	}
	defer f.Close()

	absorb, err := f.Absorb(gesture.New(gesture.TypePinchBegin))
	if err != nil {
		t.Fatalf("Absorb() error = %v", err)
	}
	if !absorb {
		t.Error("Absorb(pinch-begin) = false, want true")
	}
}

func TestFilterClosedState(t *testing.T) {
	f, err := NewFilter("function filter(ev) return false end")
	if err != nil {
		t.Fatalf("NewFilter() error = %v", err)
	}
	f.Close()
	f.Close() // idempotent

	if _, err := f.Absorb(gesture.New(gesture.TypeOther)); err == nil {
		t.Error("Absorb() after Close() error = nil, want error")
	}
}
