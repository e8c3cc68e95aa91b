// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/webpify/internal/convert"
	"github.com/pdiddy/webpify/pkg/types"
)

// copyEncoder stands in for the WebP encoder: it copies the source bytes to
// the destination without decoding anything.
type copyEncoder struct{}

func (copyEncoder) Convert(srcPath, dstPath string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}
	return os.WriteFile(dstPath, data, 0o644)
}

// failEncoder rejects every image.
type failEncoder struct{}

func (failEncoder) Convert(srcPath, dstPath string) error {
	return errors.New("decode error")
}

func testConfig(root string) types.PipelineConfig {
	return types.PipelineConfig{
		Convert: types.ConvertConfig{
			ImagesDir:       filepath.Join(root, "images"),
			MaxWidth:        1600,
			MaxHeight:       1600,
			Quality:         80,
			InputExtensions: []string{".jpg", ".jpeg", ".png"},
			OutputExtension: ".webp",
		},
		Scan: types.ScanConfig{
			Root:           root,
			TextExtensions: []string{".html", ".css", ".js"},
			ExcludeDirs:    []string{"node_modules", "_site", ".git", ".jekyll-cache", "vendor", ".bundle"},
			ManifestPath:   filepath.Join(root, "webpify-manifest.yaml"),
		},
	}
}

func setupProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestRun_FullPipeline(t *testing.T) {
	root := setupProject(t, map[string]string{
		"images/hero.png":             "png bytes",
		"index.html":                  `<img src="hero.png">`,
		"node_modules/pkg/index.html": `<img src="hero.png">`,
	})
	cfg := testConfig(root)

	var log bytes.Buffer
	if err := Run(cfg, copyEncoder{}, &log); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "images", "hero.webp")); err != nil {
		t.Errorf("expected converted output: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "images", "hero.png")); err != nil {
		t.Errorf("source image should be left in place: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `<img src="hero.webp">` {
		t.Errorf("index.html = %q, want relinked reference", data)
	}

	dep, err := os.ReadFile(filepath.Join(root, "node_modules", "pkg", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(dep) != `<img src="hero.png">` {
		t.Errorf("excluded file was modified: %q", dep)
	}

	m, err := convert.ReadManifest(cfg.Scan.ManifestPath)
	if err != nil {
		t.Fatalf("manifest: %v", err)
	}
	want := types.Mapping{OldName: "hero.png", NewName: "hero.webp"}
	if len(m.Mappings) != 1 || m.Mappings[0] != want {
		t.Errorf("manifest mappings = %v, want [%+v]", m.Mappings, want)
	}

	if !strings.Contains(log.String(), "Done:") {
		t.Error("output should contain the final summary")
	}
}

func TestRun_NoImages(t *testing.T) {
	root := setupProject(t, map[string]string{
		"index.html": `<img src="hero.png">`,
	})
	if err := os.Mkdir(filepath.Join(root, "images"), 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig(root)

	var log bytes.Buffer
	if err := Run(cfg, copyEncoder{}, &log); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(log.String(), "No images found") {
		t.Errorf("output %q should report no images", log.String())
	}
	if _, err := os.Stat(cfg.Scan.ManifestPath); !os.IsNotExist(err) {
		t.Error("no manifest should be written when nothing was found")
	}
	data, _ := os.ReadFile(filepath.Join(root, "index.html"))
	if string(data) != `<img src="hero.png">` {
		t.Errorf("text files should be untouched, got %q", data)
	}
}

func TestRun_MissingImagesDir(t *testing.T) {
	root := setupProject(t, nil)
	cfg := testConfig(root)

	if err := Run(cfg, copyEncoder{}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for missing images directory")
	}
}

func TestRun_AllConversionsFail(t *testing.T) {
	root := setupProject(t, map[string]string{
		"images/hero.png": "png bytes",
		"index.html":      `<img src="hero.png">`,
	})
	cfg := testConfig(root)

	var log bytes.Buffer
	if err := Run(cfg, failEncoder{}, &log); err != nil {
		t.Fatalf("per-image failures must not fail the run: %v", err)
	}

	if !strings.Contains(log.String(), "skipping reference update") {
		t.Errorf("output %q should report the skipped relink phase", log.String())
	}
	data, _ := os.ReadFile(filepath.Join(root, "index.html"))
	if string(data) != `<img src="hero.png">` {
		t.Errorf("text files should be untouched, got %q", data)
	}
	if _, err := os.Stat(cfg.Scan.ManifestPath); !os.IsNotExist(err) {
		t.Error("no manifest should be written when nothing converted")
	}
}

func TestRun_EndToEndWithRealEncoder(t *testing.T) {
	root := setupProject(t, map[string]string{
		"index.html": `<img src="photo.png">`,
		"style.css":  `header { background: url(photo.png); }`,
	})
	imagesDir := filepath.Join(root, "images")
	if err := os.Mkdir(imagesDir, 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(filepath.Join(imagesDir, "photo.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 10, 10))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	cfg := testConfig(root)
	var log bytes.Buffer
	if err := Run(cfg, convert.NewWebPEncoder(cfg.Convert), &log); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if _, err := os.Stat(filepath.Join(imagesDir, "photo.webp")); err != nil {
		t.Errorf("expected WebP output: %v", err)
	}
	css, _ := os.ReadFile(filepath.Join(root, "style.css"))
	if !strings.Contains(string(css), "photo.webp") {
		t.Errorf("style.css not relinked: %q", css)
	}
}
