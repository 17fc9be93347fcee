package script

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

func TestFindScriptsCaseInsensitive(t *testing.T) {
	tmpDir := t.TempDir()

	testFiles := []string{
		"test.cad",
		"script.CAD",
		"helper.Cad",
		"other.txt", // must not be detected
	}
	for _, filename := range testFiles {
		path := filepath.Join(tmpDir, filename)
		if err := os.WriteFile(path, []byte("ZOOM()"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}
	}

	files, err := FindScripts(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("expected 3 script files, got %d", len(files))
	}
	for _, f := range files {
		if filepath.Base(f) == "other.txt" {
			t.Error("other.txt should not be detected as a script file")
		}
	}
}

func TestFindScriptsNonExistentDirectory(t *testing.T) {
	if _, err := FindScripts("/nonexistent/path"); err == nil {
		t.Error("expected error for nonexistent directory, got nil")
	}
}

func TestLoadUTF8(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.cad")
	content := "VAR n = 5\nBOX(width=$n)"

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.FileName != "test.cad" {
		t.Errorf("expected filename 'test.cad', got %q", s.FileName)
	}
	if s.Content != content {
		t.Errorf("content mismatch:\nexpected: %q\ngot: %q", content, s.Content)
	}
	if s.Size == 0 {
		t.Error("script size should not be 0")
	}
}

func TestLoadResolvesCaseInsensitively(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "Drawing.CAD"), []byte("ZOOM()"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	s, err := Load(filepath.Join(tmpDir, "drawing.cad"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.FileName != "Drawing.CAD" {
		t.Errorf("expected resolved filename, got %q", s.FileName)
	}
	if s.Content != "ZOOM()" {
		t.Errorf("content wrong: %q", s.Content)
	}
}

func TestDecodeStripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("ZOOM()")...)
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ZOOM()" {
		t.Errorf("BOM not stripped: %q", got)
	}
}

func TestDecodeShiftJIS(t *testing.T) {
	content := "TEXT(text=\"こんにちは\")"

	encoder := japanese.ShiftJIS.NewEncoder()
	encoded, _, err := transform.String(encoder, content)
	if err != nil {
		t.Fatalf("failed to encode to Shift-JIS: %v", err)
	}

	got, err := Decode([]byte(encoded))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != content {
		t.Errorf("content mismatch:\nexpected: %q\ngot: %q", content, got)
	}
}

func TestDecodeWindows1252(t *testing.T) {
	content := "TEXT(text=\"café\")"

	encoder := charmap.Windows1252.NewEncoder()
	encoded, _, err := transform.String(encoder, content)
	if err != nil {
		t.Fatalf("failed to encode to Windows-1252: %v", err)
	}

	got, err := Decode([]byte(encoded))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != content {
		t.Errorf("content mismatch:\nexpected: %q\ngot: %q", content, got)
	}
}
