// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relink

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pdiddy/webpify/pkg/types"
)

// TextFiles walks cfg.Root recursively and returns the paths of regular
// files whose extension matches cfg.TextExtensions, case-insensitively.
// Directories named in cfg.ExcludeDirs are skipped before descending, so
// excluded subtrees are never entered at any depth. filepath.WalkDir visits
// entries in lexical order, which keeps the result deterministic.
func TextFiles(cfg types.ScanConfig) ([]string, error) {
	excluded := make(map[string]bool, len(cfg.ExcludeDirs))
	for _, name := range cfg.ExcludeDirs {
		excluded[name] = true
	}
	textExt := make(map[string]bool, len(cfg.TextExtensions))
	for _, ext := range cfg.TextExtensions {
		textExt[strings.ToLower(ext)] = true
	}

	var files []string
	err := filepath.WalkDir(cfg.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// The root is always entered, even if its own name is excluded.
			if path != cfg.Root && excluded[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if textExt[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", cfg.Root, err)
	}
	return files, nil
}
