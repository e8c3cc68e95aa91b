// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/webpify/internal/convert"
	"github.com/pdiddy/webpify/internal/relink"
)

var relinkCmd = &cobra.Command{
	Use:   "relink",
	Short: "Rewrite references to converted images across the project",
	Long: `Relink loads the filename mappings from the manifest written by
"webpify convert" and replaces every literal occurrence of each old name
with its new name across the project's HTML, CSS, and JS files. Files
inside excluded directories (node_modules, .git, _site, and so on) are
never touched, and files without any occurrence are left as-is.

Replacement is plain substring substitution: an old filename embedded in a
longer unrelated token is replaced there too.`,
	RunE: runRelink,
}

func runRelink(cmd *cobra.Command, args []string) error {
	cfg := scanConfig(cmd)

	m, err := convert.ReadManifest(cfg.ManifestPath)
	if err != nil {
		return err
	}
	if len(m.Mappings) == 0 {
		fmt.Println("Manifest has no mappings; nothing to relink.")
		return nil
	}

	files, err := relink.TextFiles(cfg)
	if err != nil {
		return err
	}
	_, err = relink.UpdateAll(files, m.Mappings, os.Stdout)
	return err
}

func init() {
	addScanFlags(relinkCmd)

	rootCmd.AddCommand(relinkCmd)
}
