// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConvertConfig holds settings for the image conversion stage.
type ConvertConfig struct {
	// ImagesDir is the directory scanned for source images (default "images").
	// Images are not discovered recursively; only direct entries count.
	ImagesDir string `json:"images_dir" yaml:"images_dir"`

	// MaxWidth is the widest an output image may be, in pixels (default 1600).
	MaxWidth int `json:"max_width" yaml:"max_width"`

	// MaxHeight is the tallest an output image may be, in pixels (default 1600).
	MaxHeight int `json:"max_height" yaml:"max_height"`

	// Quality is the lossy WebP quality on a 0-100 scale (default 80).
	Quality int `json:"quality" yaml:"quality"`

	// InputExtensions lists accepted source extensions, lowercase with a
	// leading dot (default .jpg, .jpeg, .png). Matching is case-insensitive.
	InputExtensions []string `json:"input_extensions" yaml:"input_extensions"`

	// OutputExtension is the extension of converted files (default ".webp").
	OutputExtension string `json:"output_extension" yaml:"output_extension"`
}

// ScanConfig holds settings for the reference-relink stage.
type ScanConfig struct {
	// Root is the project directory walked for text files (default ".").
	Root string `json:"root" yaml:"root"`

	// TextExtensions lists extensions of files eligible for reference
	// rewriting, lowercase with a leading dot (default .html, .css, .js).
	TextExtensions []string `json:"text_extensions" yaml:"text_extensions"`

	// ExcludeDirs lists directory names skipped during the walk, matched by
	// exact name at any depth (default node_modules, _site, .git,
	// .jekyll-cache, vendor, .bundle).
	ExcludeDirs []string `json:"exclude_dirs" yaml:"exclude_dirs"`

	// ManifestPath is where the conversion manifest is written and read
	// (default "webpify-manifest.yaml").
	ManifestPath string `json:"manifest_path" yaml:"manifest_path"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Convert ConvertConfig `json:"convert" yaml:"convert"`
	Scan    ScanConfig    `json:"scan" yaml:"scan"`
}
