// Package script loads InterpreCAD script files (.cad) from disk and
// normalizes their text encoding to UTF-8.
package script

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// Script is one loaded script file with its content converted to UTF-8.
type Script struct {
	FileName string
	Content  string
	Size     int64
}

// Load reads a single script file and decodes it to UTF-8. When the exact
// path does not exist, the file name is resolved case-insensitively within
// its directory, since scripts written on Windows often reference files with
// mismatched case.
func Load(path string) (*Script, error) {
	info, err := os.Stat(path)
	if err != nil {
		resolved, rerr := resolveCaseInsensitive(path)
		if rerr != nil {
			return nil, fmt.Errorf("failed to stat file: %w", err)
		}
		path = resolved
		if info, err = os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to stat file: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	content, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to convert encoding: %w", err)
	}

	return &Script{
		FileName: filepath.Base(path),
		Content:  content,
		Size:     info.Size(),
	}, nil
}

// FindScripts returns all .cad files under dir (extension matched
// case-insensitively), in walk order.
func FindScripts(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".cad") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// resolveCaseInsensitive searches the parent directory for an entry whose
// name matches the requested file name ignoring case.
func resolveCaseInsensitive(path string) (string, error) {
	dir := filepath.Dir(path)
	want := filepath.Base(path)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(e.Name(), want) {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", fmt.Errorf("file %q not found in %s", want, dir)
}

// utf8BOM is the byte order mark some Windows editors prepend.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts raw file bytes to UTF-8. Valid UTF-8 passes through with
// a BOM stripped; otherwise Shift-JIS is attempted, and Windows-1252 is the
// final fallback since legacy CAD tooling on Windows writes either.
func Decode(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if utf8.Valid(data) {
		return string(data), nil
	}

	if decoded, err := japanese.ShiftJIS.NewDecoder().Bytes(data); err == nil && !bytes.ContainsRune(decoded, utf8.RuneError) {
		return string(decoded), nil
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode as Windows-1252: %w", err)
	}
	return string(decoded), nil
}
