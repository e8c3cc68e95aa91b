// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/webpify/pkg/types"
)

// addConvertFlags registers the conversion-stage flags on cmd.
func addConvertFlags(cmd *cobra.Command) {
	cmd.Flags().String("images-dir", "images", "directory containing source images")
	cmd.Flags().Int("max-width", 1600, "maximum output width in pixels")
	cmd.Flags().Int("max-height", 1600, "maximum output height in pixels")
	cmd.Flags().Int("quality", 80, "lossy WebP quality (0-100)")
}

// addScanFlags registers the relink-stage flags on cmd.
func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().String("root", ".", "project root to scan for text files")
	addManifestFlag(cmd)
}

// addManifestFlag registers the manifest path flag on cmd.
func addManifestFlag(cmd *cobra.Command) {
	cmd.Flags().String("manifest", "webpify-manifest.yaml", "conversion manifest path")
}

// convertConfig builds the conversion settings from flags, with extension
// sets coming from the viper config (file, env, or defaults).
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	imagesDir, _ := cmd.Flags().GetString("images-dir")
	maxWidth, _ := cmd.Flags().GetInt("max-width")
	maxHeight, _ := cmd.Flags().GetInt("max-height")
	quality, _ := cmd.Flags().GetInt("quality")

	return types.ConvertConfig{
		ImagesDir:       imagesDir,
		MaxWidth:        maxWidth,
		MaxHeight:       maxHeight,
		Quality:         quality,
		InputExtensions: viper.GetStringSlice("convert.input_extensions"),
		OutputExtension: viper.GetString("convert.output_extension"),
	}
}

// scanConfig builds the relink settings from flags, with the text-extension
// and excluded-directory sets coming from the viper config.
func scanConfig(cmd *cobra.Command) types.ScanConfig {
	root, _ := cmd.Flags().GetString("root")
	manifest, _ := cmd.Flags().GetString("manifest")

	return types.ScanConfig{
		Root:           root,
		TextExtensions: viper.GetStringSlice("scan.text_extensions"),
		ExcludeDirs:    viper.GetStringSlice("scan.exclude_dirs"),
		ManifestPath:   manifest,
	}
}
