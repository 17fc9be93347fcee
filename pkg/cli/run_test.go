package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LuisCarlosOrobio/InterpreCAD/pkg/config"
)

func TestRunDirectory(t *testing.T) {
	cfg = config.Default()
	dir := t.TempDir()
	scripts := map[string]string{
		"a.cad": "SPHERE(center=[0,0,0], radius=1)\n",
		"b.CAD": "ZOOM()\n",
	}
	for name, content := range scripts {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}

	out := filepath.Join(t.TempDir(), "out.vbs")
	outputFile = out
	defer func() { outputFile = "" }()

	if err := runRun(nil, []string{dir}); err != nil {
		t.Fatalf("runRun failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "Rhino.AddSphere Array(0, 0, 0), 1") {
		t.Errorf("output missing first script's render:\n%s", got)
	}
	if !strings.Contains(got, "Rhino.ZoomExtents") {
		t.Errorf("output missing second script's render:\n%s", got)
	}
	if n := strings.Count(got, "Generated by InterpreCAD"); n != 2 {
		t.Errorf("expected one header per script, got %d:\n%s", n, got)
	}
}

func TestRunDirectoryWithoutScripts(t *testing.T) {
	cfg = config.Default()
	err := runRun(nil, []string{t.TempDir()})
	if err == nil || !strings.Contains(err.Error(), "no .cad scripts") {
		t.Fatalf("expected a no-scripts error, got %v", err)
	}
}
