// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/webpify/internal/convert"
	"github.com/pdiddy/webpify/internal/pipeline"
	"github.com/pdiddy/webpify/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Convert images and rewrite references in one pass",
	Long: `Run executes the full pipeline: every JPEG and PNG in the images
directory is converted to WebP (oversized images are scaled down to fit the
configured bounding box), the old-to-new filename mappings are written to the
manifest, and all references to the old names are rewritten across the
project's text files.

Source images are never modified or deleted. One unreadable or corrupt image
is logged and skipped without stopping the batch.`,
	RunE: runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg := types.PipelineConfig{
		Convert: convertConfig(cmd),
		Scan:    scanConfig(cmd),
	}
	return pipeline.Run(cfg, convert.NewWebPEncoder(cfg.Convert), os.Stdout)
}

func init() {
	addConvertFlags(runCmd)
	addScanFlags(runCmd)

	rootCmd.AddCommand(runCmd)
}
