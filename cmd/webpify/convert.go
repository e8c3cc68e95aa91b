// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/webpify/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert images to WebP and write the mapping manifest",
	Long: `Convert re-encodes every JPEG and PNG in the images directory as WebP,
scaling oversized images down to fit the configured bounding box. The
old-to-new filename mappings are saved to the manifest for a later
"webpify relink" run. Existing WebP outputs are overwritten.`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := convertConfig(cmd)
	manifest, _ := cmd.Flags().GetString("manifest")

	names, err := convert.ListImages(cfg.ImagesDir, cfg.InputExtensions)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Printf("No images found in %s.\n", cfg.ImagesDir)
		return nil
	}

	result := convert.ConvertBatch(convert.NewWebPEncoder(cfg), cfg.ImagesDir, names, cfg.OutputExtension, os.Stdout)
	if len(result.Mappings) == 0 {
		fmt.Println("No images converted.")
		return nil
	}

	return convert.WriteManifest(manifest, cfg, result)
}

func init() {
	addConvertFlags(convertCmd)
	addManifestFlag(convertCmd)

	rootCmd.AddCommand(convertCmd)
}
