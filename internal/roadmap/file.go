package roadmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/amishk599/prepmap/internal/model"
)

// FilePrefix starts every generated roadmap file name.
const FilePrefix = "roadmap_"

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// DefaultFilename is roadmap_<company>_<role>_<YYYYmmdd_HHMMSS>.json with
// spaces, slashes and other unsafe characters collapsed to underscores.
func DefaultFilename(r model.Roadmap, now time.Time) string {
	return fmt.Sprintf("%s%s_%s_%s.json", FilePrefix, sanitize(r.Company), sanitize(r.Role), now.Format("20060102_150405"))
}

func sanitize(s string) string {
	s = unsafeChars.ReplaceAllString(strings.TrimSpace(s), "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "unknown"
	}
	return s
}

// Marshal encodes the roadmap as indented JSON without HTML escaping so
// names like "AT&T" stay readable.
func Marshal(r model.Roadmap) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("encode roadmap: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the roadmap to path, creating parent directories as needed.
func Save(r model.Roadmap, path string) error {
	data, err := Marshal(r)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write roadmap: %w", err)
	}
	return nil
}

// Load reads a roadmap file written by Save.
func Load(path string) (model.Roadmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Roadmap{}, fmt.Errorf("read roadmap: %w", err)
	}
	var r model.Roadmap
	if err := json.Unmarshal(data, &r); err != nil {
		return model.Roadmap{}, fmt.Errorf("decode roadmap %s: %w", path, err)
	}
	return r, nil
}

// LatestFile returns the most recently modified roadmap_*.json in dir.
// ok is false when there is none.
func LatestFile(dir string) (path string, ok bool, err error) {
	if dir == "" {
		dir = "."
	}
	matches, err := filepath.Glob(filepath.Join(dir, FilePrefix+"*.json"))
	if err != nil {
		return "", false, fmt.Errorf("list roadmaps: %w", err)
	}
	if len(matches) == 0 {
		return "", false, nil
	}

	type candidate struct {
		path string
		mod  time.Time
	}
	var files []candidate
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, candidate{m, info.ModTime()})
	}
	if len(files) == 0 {
		return "", false, nil
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].mod.Equal(files[j].mod) {
			return files[i].path > files[j].path
		}
		return files[i].mod.After(files[j].mod)
	})
	return files[0].path, true, nil
}
