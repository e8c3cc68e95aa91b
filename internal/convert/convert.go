// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert enumerates source images and re-encodes them as WebP,
// collecting old-name to new-name mappings for the relink stage.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/webpify/pkg/types"
)

// Encoder transforms one image file into the output format. The production
// implementation is WebPEncoder; tests inject fakes.
type Encoder interface {
	// Convert reads the image at srcPath and writes the encoded result
	// to dstPath.
	Convert(srcPath, dstPath string) error
}

// BatchResult holds the outcome of a batch conversion run. Mappings preserves
// enumeration order and contains one entry per successful conversion.
type BatchResult struct {
	Converted int
	Failed    int
	Mappings  []types.Mapping
}

// Total returns the total number of images processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any images failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ListImages returns the names of regular files directly inside dir whose
// extension matches one of exts, case-insensitively. Subdirectories are not
// entered and symlinks are skipped. Order follows os.ReadDir, so it is
// stable within a run. A missing or unreadable directory is a fatal error.
func ListImages(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading images directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if hasExtension(entry.Name(), exts) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// OutputName derives the converted filename: the original extension is
// stripped and outExt appended. Two sources differing only in extension
// collide on the same output name; the last one converted wins.
func OutputName(name, outExt string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + outExt
}

// ConvertImage converts a single image inside dir, writing the output as a
// sibling file with extension outExt. On success it returns the mapping from
// old to new name. Any failure is logged to w with the file name and error
// and yields no mapping; the caller continues with the remaining files.
// The source image is never modified or removed.
func ConvertImage(enc Encoder, dir, name, outExt string, w io.Writer) (types.Mapping, types.ConversionStatus) {
	newName := OutputName(name, outExt)

	if err := enc.Convert(filepath.Join(dir, name), filepath.Join(dir, newName)); err != nil {
		fmt.Fprintf(w, "failed:    %s (%v)\n", name, err)
		return types.Mapping{}, types.ConversionFailed
	}

	fmt.Fprintf(w, "converted: %s -> %s\n", name, newName)
	return types.Mapping{OldName: name, NewName: newName}, types.ConversionDone
}

// ConvertBatch processes the named images sequentially, printing per-file
// status to w and returning a summary with the collected mappings in input
// order. One bad image does not stop the batch.
func ConvertBatch(enc Encoder, dir string, names []string, outExt string, w io.Writer) BatchResult {
	var result BatchResult
	for _, name := range names {
		mapping, status := ConvertImage(enc, dir, name, outExt, w)
		switch status {
		case types.ConversionDone:
			result.Converted++
			result.Mappings = append(result.Mappings, mapping)
		case types.ConversionFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result
}

// hasExtension reports whether name's extension matches one of exts,
// ignoring case.
func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
