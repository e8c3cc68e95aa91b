// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences the conversion and relink stages into the full
// one-shot run.
package pipeline

import (
	"fmt"
	"io"

	"github.com/pdiddy/webpify/internal/convert"
	"github.com/pdiddy/webpify/internal/relink"
	"github.com/pdiddy/webpify/pkg/types"
)

// Run executes the full pipeline: enumerate source images, convert each one,
// persist the manifest, then rewrite references across the project tree.
// When the images directory is empty, or no image converts successfully, the
// walk and update phases are skipped entirely and Run still succeeds. Errors
// outside per-image conversion (enumeration, manifest write, walking,
// text-file I/O) propagate and fail the run.
func Run(cfg types.PipelineConfig, enc convert.Encoder, w io.Writer) error {
	names, err := convert.ListImages(cfg.Convert.ImagesDir, cfg.Convert.InputExtensions)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintf(w, "No images found in %s.\n", cfg.Convert.ImagesDir)
		return nil
	}

	result := convert.ConvertBatch(enc, cfg.Convert.ImagesDir, names, cfg.Convert.OutputExtension, w)
	if len(result.Mappings) == 0 {
		fmt.Fprintln(w, "No images converted; skipping reference update.")
		return nil
	}

	if err := convert.WriteManifest(cfg.Scan.ManifestPath, cfg.Convert, result); err != nil {
		return err
	}

	files, err := relink.TextFiles(cfg.Scan)
	if err != nil {
		return err
	}
	relinked, err := relink.UpdateAll(files, result.Mappings, w)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Done: %d image(s) converted, %d file(s) relinked.\n",
		result.Converted, relinked.Updated)
	return nil
}
