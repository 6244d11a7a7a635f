package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSceneSpec(t *testing.T) {
	spec, err := LoadSceneSpec()
	if err != nil {
		t.Fatalf("LoadSceneSpec() failed: %v", err)
	}
	if spec.Width != 800 || spec.Height != 600 || spec.Gravity != 300 {
		t.Fatalf("playfield = %vx%v g=%v", spec.Width, spec.Height, spec.Gravity)
	}
	if len(spec.Platforms) != 4 || spec.Platforms[0].Scale != 2 {
		t.Fatalf("platforms = %+v", spec.Platforms)
	}
	if spec.Stars.Count != 12 || spec.Stars.StartX != 12 || spec.Stars.StepX != 70 {
		t.Fatalf("stars = %+v", spec.Stars)
	}
	if spec.Bomb.SplitX != 400 || spec.Bomb.MaxVX != 200 {
		t.Fatalf("bomb = %+v", spec.Bomb)
	}
}

func TestLoadEntityBuildSpecs(t *testing.T) {
	names := []string{"player.yaml", "star.yaml", "bomb.yaml", "platform.yaml", "sky.yaml", "title.yaml", "score_text.yaml", "sfx.yaml"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(name)
			if err != nil {
				t.Fatalf("LoadEntityBuildSpec(%s): %v", name, err)
			}
			if len(spec.Components) == 0 {
				t.Fatalf("%s has no components", name)
			}
		})
	}
}

func TestName(t *testing.T) {
	cases := map[string]string{
		"player.yaml":                    "player.yaml",
		"prefabs/player.yaml":            "player.yaml",
		filepath.Join("a", "b", "x.yml"): "x.yml",
	}
	for in, want := range cases {
		if got := Name(in); got != want {
			t.Errorf("Name(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWatcherReportsYAMLChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "player.yaml"), []byte("name: player\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	var got []string
	for time.Now().Before(deadline) && len(got) == 0 {
		got = w.Drain()
		time.Sleep(20 * time.Millisecond)
	}
	if len(got) == 0 {
		t.Fatalf("no change reported")
	}
	for _, name := range got {
		if name != "player.yaml" {
			t.Fatalf("reported %q, want only player.yaml", name)
		}
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("first Close() = %v", err)
	}
	_ = w.Close()
	if got := w.Drain(); len(got) != 0 {
		t.Fatalf("Drain() after close = %v", got)
	}
}
