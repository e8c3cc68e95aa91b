// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the configuration and result records shared across
// pipeline stages.
package types

// ConversionStatus indicates the outcome of converting one image.
type ConversionStatus string

const (
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// Mapping records that a source image OldName was converted to NewName.
// Both are base filenames without directory components ("hero.png",
// "hero.webp"); the relink stage substitutes them literally in text files.
type Mapping struct {
	OldName string `json:"old_name" yaml:"old_name"`
	NewName string `json:"new_name" yaml:"new_name"`
}
