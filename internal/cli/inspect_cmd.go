// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// inspect_cmd.go - Capability profile inspection command.
package cli

import (
	"fmt"

	"github.com/jeranaias/navtokens/internal/device"
)

// HandleInspect handles the "inspect" command: derive and display the
// capability profile for a registry device or for ad-hoc metrics given
// with --width/--height/--ratio/--os.
func HandleInspect(args Args) error {
	parser := NewArgParser(args.Raw)

	name, metrics, err := inspectTarget(parser, args)
	if err != nil {
		return err
	}

	profile := device.Detect(metrics)

	if args.JSON {
		data := InspectData{
			Name: name,
			Metrics: MetricsData{
				Width:      metrics.Width,
				Height:     metrics.Height,
				PixelRatio: metrics.PixelRatio,
				OS:         metrics.OS.String(),
				TabletHint: metrics.TabletHint,
			},
			Profile: profile,
		}
		return NewJSONResponse("inspect", data).Print()
	}

	fmt.Println(TitleStyle.Render("Capability Profile: " + name))
	fmt.Printf("%s %s\n", RenderLabel("Metrics"), ValueStyle.Render(metrics.String()))
	fmt.Println()

	fmt.Println(SectionStyle.Render("Form factor"))
	fmt.Printf("%s %s\n", RenderLabel("Tablet"), RenderBool(profile.IsTablet))
	fmt.Printf("%s %s\n", RenderLabel("Notch or island"), RenderBool(profile.HasNotchOrIsland))
	fmt.Printf("%s %s\n", RenderLabel("Dynamic Island"), RenderBool(profile.HasDynamicIsland))
	fmt.Printf("%s %s\n", RenderLabel("Home indicator"), RenderBool(profile.HasHomeIndicator))

	fmt.Println(SectionStyle.Render("Insets"))
	fmt.Printf("%s %s\n", RenderLabel("Status bar"), ValueStyle.Render(fmt.Sprintf("%gpt", profile.StatusBarHeight)))
	fmt.Printf("%s %s\n", RenderLabel("Bottom"), ValueStyle.Render(fmt.Sprintf("%gpt", profile.BottomInset)))

	fmt.Println(SectionStyle.Render("Materials"))
	fmt.Printf("%s %s\n", RenderLabel("Blur support"), RenderBool(profile.SupportsBlur))
	fmt.Printf("%s %s\n", RenderLabel("Blur ceiling"), ValueStyle.Render(fmt.Sprintf("%d / 100", profile.MaxBlurIntensity)))

	return nil
}

// inspectTarget resolves what to inspect: ad-hoc metrics when --width is
// given, otherwise a registry device.
func inspectTarget(parser *ArgParser, args Args) (string, device.Metrics, error) {
	if parser.HasFlag("width") || parser.HasFlag("height") {
		width, err := parser.FlagFloat("width")
		if err != nil || width <= 0 {
			return "", device.Metrics{}, NewValidationError("width", parser.Flag("width"), "must be a positive number")
		}
		height, err := parser.FlagFloat("height")
		if err != nil || height <= 0 {
			return "", device.Metrics{}, NewValidationError("height", parser.Flag("height"), "must be a positive number")
		}

		m := device.Metrics{
			Width:      width,
			Height:     height,
			PixelRatio: parser.FlagFloatOrDefault("ratio", 2),
			OS:         device.ParseFamily(parser.FlagOrDefault("os", "android")),
			TabletHint: parser.BoolFlag("tablet"),
		}
		return "custom", m, nil
	}

	reg, err := buildRegistry(args)
	if err != nil {
		return "", device.Metrics{}, err
	}
	ref, err := resolveDevice(reg, args)
	if err != nil {
		return "", device.Metrics{}, err
	}
	return ref.Name, ref.Metrics, nil
}
