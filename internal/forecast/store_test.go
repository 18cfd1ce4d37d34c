package forecast

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	forecaster "github.com/aouyang1/go-forecaster"
)

func TestStore_ArtifactPath(t *testing.T) {
	s := NewStore("models")
	aapl := s.ArtifactPath("AAPL")
	msft := s.ArtifactPath("MSFT")

	if !strings.Contains(aapl, "AAPL") {
		t.Errorf("AAPL artifact path %q does not contain ticker", aapl)
	}
	if aapl == msft {
		t.Errorf("AAPL and MSFT artifacts collide at %q", aapl)
	}
	if again := s.ArtifactPath("AAPL"); again != aapl {
		t.Errorf("artifact path not deterministic: %q vs %q", aapl, again)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	s := NewStore(t.TempDir())
	_, err := s.Load("NEVERTRAINED")
	if err == nil {
		t.Fatal("expected error for missing artifact")
	}
	if !errors.Is(err, ErrModelNotFound) {
		t.Fatalf("expected ErrModelNotFound, got %v", err)
	}
}

func TestStore_SaveOverwritesAndIsolates(t *testing.T) {
	s := NewStore(t.TempDir())
	var m forecaster.Model

	if err := s.Save("AAPL", m); err != nil {
		t.Fatalf("save AAPL: %v", err)
	}
	if err := s.Save("MSFT", m); err != nil {
		t.Fatalf("save MSFT: %v", err)
	}
	if _, err := os.Stat(s.ArtifactPath("AAPL")); err != nil {
		t.Fatalf("AAPL artifact missing after MSFT save: %v", err)
	}

	// Retraining replaces the artifact in place.
	if err := s.Save("AAPL", m); err != nil {
		t.Fatalf("re-save AAPL: %v", err)
	}
	if _, err := s.Load("AAPL"); err != nil {
		t.Fatalf("load after re-save: %v", err)
	}
}

func TestStore_LoadCorrupt(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := os.WriteFile(s.ArtifactPath("BAD"), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := s.Load("BAD")
	if err == nil {
		t.Fatal("expected decode error for corrupt artifact")
	}
	if errors.Is(err, ErrModelNotFound) {
		t.Fatal("corrupt artifact must not be reported as missing")
	}
}

func TestStore_ArtifactLandsInDir(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	if got := filepath.Dir(s.ArtifactPath("AAPL")); got != dir {
		t.Errorf("artifact dir = %q, want %q", got, dir)
	}
}
