package fixer

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter decides which directories are descended into and which files are eligible
type Filter struct {
	SkipDirs   []string
	SkipFiles  []string
	Extensions []string
	Ignore     []string
}

// SkipDir reports whether a directory must not be descended into. Any
// configured substring anywhere in the walked path excludes it.
func (f *Filter) SkipDir(root, path string) bool {
	for _, s := range f.SkipDirs {
		if strings.Contains(path, s) {
			return true
		}
	}
	return f.ignored(root, path)
}

// Eligible reports whether a file should be processed
func (f *Filter) Eligible(root, path string) bool {
	name := filepath.Base(path)
	for _, skip := range f.SkipFiles {
		if name == skip {
			return false
		}
	}

	matched := false
	for _, ext := range f.Extensions {
		if strings.HasSuffix(name, ext) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	return !f.ignored(root, path)
}

func (f *Filter) ignored(root, path string) bool {
	if len(f.Ignore) == 0 {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return false
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range f.Ignore {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
