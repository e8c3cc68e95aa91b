// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/webpify/pkg/types"
)

// Manifest is the on-disk record of a conversion run. The relink stage can
// load it in a later invocation to apply the same mappings. It is an output
// artifact only: conversion never consults it to skip work.
type Manifest struct {
	Config   ManifestConfig  `yaml:"config"`
	Mappings []types.Mapping `yaml:"mappings"`
	Summary  ManifestSummary `yaml:"summary"`
}

// ManifestConfig echoes the conversion settings that produced the mappings.
type ManifestConfig struct {
	MaxWidth  int `yaml:"max_width"`
	MaxHeight int `yaml:"max_height"`
	Quality   int `yaml:"quality"`
}

// ManifestSummary stores batch statistics and a timestamp.
type ManifestSummary struct {
	Converted int       `yaml:"converted"`
	Failed    int       `yaml:"failed"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteManifest saves the batch outcome to a YAML file at path.
func WriteManifest(path string, cfg types.ConvertConfig, result BatchResult) error {
	m := Manifest{
		Config: ManifestConfig{
			MaxWidth:  cfg.MaxWidth,
			MaxHeight: cfg.MaxHeight,
			Quality:   cfg.Quality,
		},
		Mappings: result.Mappings,
		Summary: ManifestSummary{
			Converted: result.Converted,
			Failed:    result.Failed,
			Timestamp: time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// ReadManifest loads a previously written manifest from path.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}
