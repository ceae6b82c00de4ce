// Package rename renumbers the image files of a folder under a prefix
// derived from the folder's own name, keeping whatever question, type and
// page metadata their current names already carry.
package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/eduextract/bancoimg/internal/extract"
	"github.com/eduextract/bancoimg/internal/filename"
	"github.com/eduextract/bancoimg/internal/logger"
	"github.com/eduextract/bancoimg/internal/sanitize"
)

// Renamer renames every image file in one folder. Like the extraction
// pipeline it owns a run-scoped sequence counter starting at 1.
type Renamer struct {
	dir    string
	prefix string
	log    logger.Logger
	seq    int
}

// Result summarizes one rename run.
type Result struct {
	Prefix  string
	Renamed int
	Skipped int
}

// NewRenamer validates the folder and derives the filename prefix from
// its name. A missing folder is the fatal error path.
func NewRenamer(dir string, log logger.Logger) (*Renamer, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve folder: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("folder not found: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a folder", abs)
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Renamer{
		dir:    abs,
		prefix: sanitize.FolderPrefix(abs),
		log:    log,
		seq:    1,
	}, nil
}

// Prefix returns the folder-derived filename prefix.
func (r *Renamer) Prefix() string { return r.prefix }

// Run renames the folder's files in modification-time order. Scripts and
// the extraction report are left alone, and a file that fails to rename
// is logged and skipped without consuming a sequence number.
func (r *Renamer) Run() (Result, error) {
	files, err := r.listFiles()
	if err != nil {
		return Result{}, err
	}

	result := Result{Prefix: r.prefix}
	if len(files) == 0 {
		r.log.Warn("no files to rename in %s", r.dir)
		return result, nil
	}
	r.log.Info("renaming %d files in %s with prefix %s", len(files), r.dir, r.prefix)

	for _, name := range files {
		newName, ok := r.renameOne(name)
		if !ok {
			result.Skipped++
			continue
		}
		r.log.Info("renamed %s -> %s", name, newName)
		result.Renamed++
	}
	return result, nil
}

// listFiles returns the folder's regular files sorted by modification
// time, oldest first, with the name as a stable tiebreaker.
func (r *Renamer) listFiles() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder: %w", err)
	}

	type dated struct {
		name string
		mod  int64
	}
	var files []dated
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, dated{name: e.Name(), mod: info.ModTime().UnixNano()})
	}
	sort.SliceStable(files, func(i, j int) bool {
		if files[i].mod != files[j].mod {
			return files[i].mod < files[j].mod
		}
		return files[i].name < files[j].name
	})

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.name)
	}
	return names, nil
}

// renameOne renames a single file, reporting whether it was renamed.
func (r *Renamer) renameOne(oldName string) (string, bool) {
	if skipFile(oldName) {
		return "", false
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(oldName), "."))
	if ext == "" {
		ext = "bin"
	}
	base := strings.TrimSuffix(oldName, filepath.Ext(oldName))

	parsed := filename.Parse(base)
	newName := filename.Rebuild(r.seq, r.prefix, parsed, ext)
	if newName == oldName {
		// Already in final form for this position; still consumes the number.
		r.seq++
		return newName, true
	}

	oldPath := filepath.Join(r.dir, oldName)
	newPath := filepath.Join(r.dir, newName)
	if err := os.Rename(oldPath, newPath); err != nil {
		r.log.Error("failed to rename %s: %v", oldName, err)
		return "", false
	}
	r.seq++
	return newName, true
}

// skipFile filters out the files a rename run must not touch.
func skipFile(name string) bool {
	switch {
	case name == extract.ReportFileName:
		return true
	case strings.HasSuffix(name, ".py"), strings.HasSuffix(name, ".go"):
		return true
	case strings.HasPrefix(name, "."):
		return true
	}
	return false
}
