// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// export_cmd.go - Token snapshot export command.
package cli

import (
	"fmt"

	"github.com/jeranaias/navtokens/internal/config"
	"github.com/jeranaias/navtokens/internal/export"
)

// HandleExport handles the "export" command: write a token snapshot for a
// device to a file.
//
//	navtokens export iphone-14-pro --out tokens.json
//	navtokens export pixel-7 --format md
func HandleExport(args Args) error {
	parser := NewArgParser(args.Raw)

	reg, err := buildRegistry(args)
	if err != nil {
		return err
	}
	ref, err := resolveDevice(reg, args)
	if err != nil {
		return err
	}

	format := parser.FlagOrDefault("format", config.Global().OutputFormat)
	opts := export.DefaultOptions()
	opts.Theme = parser.FlagOrDefault("theme", opts.Theme)

	exporter, err := export.ForFormat(format, opts)
	if err != nil {
		return ErrUnsupportedFormat(format, []string{"json", "md", "html"})
	}

	snap := export.NewSnapshot(ref)

	var path string
	var size int
	if out := parser.Flag("out"); out != "" {
		safe, pathErr := ValidateOutputPath(out)
		if pathErr != nil {
			return NewCommandError("export", "validate --out", pathErr.Error(), pathErr)
		}
		size, err = export.WriteSnapshot(snap, exporter, safe)
		path = safe
	} else {
		path, err = export.ExportToFile(snap, exporter, opts)
	}
	if err != nil {
		return NewCommandError("export", "write", "could not write snapshot", err)
	}

	if args.JSON {
		data := ExportData{
			SnapshotID: snap.SnapshotID,
			Device:     snap.Device,
			Path:       path,
			Format:     format,
			SizeBytes:  size,
		}
		return NewJSONResponse("export", data).Print()
	}

	if !args.Quiet {
		fmt.Printf("%s %s\n", SuccessStyle.Render("Exported"), ValueStyle.Render(path))
		if size > 0 {
			fmt.Printf("%s %s\n", RenderLabel("Size"), ValueStyle.Render(formatBytes(int64(size))))
		}
		fmt.Printf("%s %s\n", RenderLabel("Snapshot"), DimStyle.Render(snap.SnapshotID))
	}
	return nil
}
