// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package relink rewrites literal references to converted image filenames
// across a project's text files.
package relink

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/webpify/pkg/types"
)

// Result holds the outcome of a relink run.
type Result struct {
	Updated   int
	Unchanged int
}

// Total returns the total number of text files examined.
func (r Result) Total() int {
	return r.Updated + r.Unchanged
}

// UpdateFile applies every mapping to the file at path with plain substring
// replacement and writes the file back only if the content changed, keeping
// the original permission bits. It reports whether the file was rewritten.
// Substitution is literal: an old name appearing inside a longer token is
// replaced there too. I/O errors abort the run.
func UpdateFile(path string, mappings []types.Mapping, w io.Writer) (bool, error) {
	orig, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	content := string(orig)
	for _, m := range mappings {
		content = strings.ReplaceAll(content, m.OldName, m.NewName)
	}
	if content == string(orig) {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(w, "updated:   %s\n", path)
	return true, nil
}

// UpdateAll applies the mappings to every file in files, printing each
// updated path to w and a summary line at the end. Unchanged files are not
// rewritten, so their modification times are left alone.
func UpdateAll(files []string, mappings []types.Mapping, w io.Writer) (Result, error) {
	var result Result
	for _, path := range files {
		changed, err := UpdateFile(path, mappings, w)
		if err != nil {
			return result, err
		}
		if changed {
			result.Updated++
		} else {
			result.Unchanged++
		}
	}
	fmt.Fprintf(w, "Relink summary: %d updated, %d unchanged (total: %d)\n",
		result.Updated, result.Unchanged, result.Total())
	return result, nil
}
