// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// devices_cmd.go - Device registry listing command.
package cli

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/navtokens/internal/device"
)

// HandleDevices handles the "devices" command: lists every device the
// registry knows, built-ins plus any loaded profile files.
func HandleDevices(args Args) error {
	reg, err := buildRegistry(args)
	if err != nil {
		return err
	}

	refs := reg.All()

	if args.JSON {
		data := DeviceListData{Count: len(refs)}
		for _, ref := range refs {
			data.Devices = append(data.Devices, DeviceListEntry{
				Name:       ref.Name,
				Width:      ref.Metrics.Width,
				Height:     ref.Metrics.Height,
				PixelRatio: ref.Metrics.PixelRatio,
				OS:         ref.Metrics.OS.String(),
				Tablet:     ref.Metrics.TabletHint,
			})
		}
		return NewJSONResponse("devices", data).Print()
	}

	fmt.Println(TitleStyle.Render("Device Profiles"))

	nameWidth := 0
	for _, ref := range refs {
		if w := runewidth.StringWidth(ref.Name); w > nameWidth {
			nameWidth = w
		}
	}

	for _, ref := range refs {
		m := ref.Metrics
		padded := ref.Name + runewidth.FillRight("", nameWidth-runewidth.StringWidth(ref.Name))
		form := ""
		if device.Detect(m).IsTablet {
			form = WarningStyle.Render("  tablet")
		}
		fmt.Printf("  %s  %s%s\n",
			HighlightStyle.Render(padded),
			ValueStyle.Render(m.String()),
			form)
	}

	fmt.Println()
	fmt.Println(DimStyle.Render(fmt.Sprintf("%d devices. Add more with --profiles FILE or profiles_path in config.", len(refs))))
	return nil
}
