package literate

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtensions are the file extensions treated as literate sources
var DefaultExtensions = []string{".lhs"}

// ReadFile reads a literate source verbatim
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FindSources recursively collects files under root whose extension is in
// exts (case-insensitive). A root that is a regular file is returned as is.
// Results are sorted.
func FindSources(root string, exts []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	wanted := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		wanted[ext] = true
	}

	var sources []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if wanted[strings.ToLower(filepath.Ext(path))] {
			sources = append(sources, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(sources)
	return sources, nil
}
