// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// tokens_cmd.go - Token tree display command.
package cli

import (
	"fmt"

	"github.com/jeranaias/navtokens/internal/device"
	"github.com/jeranaias/navtokens/internal/tokens"
	"github.com/jeranaias/navtokens/internal/visual"
)

// HandleTokens handles the "tokens" command: assemble and display the
// token tree for a device. --json emits the full tree; the styled view
// shows the chrome-relevant summary.
func HandleTokens(args Args) error {
	reg, err := buildRegistry(args)
	if err != nil {
		return err
	}
	ref, err := resolveDevice(reg, args)
	if err != nil {
		return err
	}

	profile := device.Detect(ref.Metrics)
	tree := tokens.Assemble(profile)

	if args.JSON {
		data := TokensData{Device: ref.Name, Tokens: tree, Profile: profile}
		return NewJSONResponse("tokens", data).Print()
	}

	fmt.Println(TitleStyle.Render("Navigation Tokens: " + ref.Name))
	fmt.Printf("%s %s\n", RenderLabel("Profile"), ValueStyle.Render(profile.String()))
	fmt.Println()

	fmt.Println(SectionStyle.Render("spacing"))
	printToken("header.height", "%gpt", tree.Spacing.Header.Height)
	printToken("header.total_height", "%gpt", tree.Spacing.Header.TotalHeight)
	printToken("tab_bar.height", "%gpt", tree.Spacing.TabBar.Height)
	printToken("tab_bar.total_height", "%gpt", tree.Spacing.TabBar.TotalHeight)
	printToken("tab_bar.icon_size", "%gpt", tree.Spacing.TabBar.IconSize)
	printToken("insets.status_bar", "%gpt", tree.Spacing.Insets.StatusBar)
	printToken("insets.bottom", "%gpt", tree.Spacing.Insets.Bottom)

	fmt.Println(SectionStyle.Render("typography"))
	printTypeStyle("header.title", tree.Typography.Header.Title)
	printTypeStyle("header.large_title", tree.Typography.Header.LargeTitle)
	printTypeStyle("tab_bar.label", tree.Typography.TabBar.Label)

	fmt.Println(SectionStyle.Render("colors"))
	printToken("tint.tab_bar_active", "%s", tree.Colors.Tint.TabBarActive)
	printToken("tint.tab_bar_inactive", "%s", tree.Colors.Tint.TabBarInactive)
	printToken("background.screen", "%s", tree.Colors.Background.Screen)
	printToken("backdrop.tab_bar", "%s", tree.Colors.Backdrop.TabBar)
	printToken("border", "%s", tree.Colors.Border)

	fmt.Println(SectionStyle.Render("shape"))
	printToken("card", "%.2fpt", tree.Shape.Card)
	printToken("sheet", "%.2fpt", tree.Shape.Sheet)
	printToken("button", "%.2fpt", tree.Shape.Button)
	printToken("pill", "%.2fpt", tree.Shape.Pill)

	fmt.Println(SectionStyle.Render("elevation"))
	printShadow("header", tree.Elevation.Header)
	printShadow("tab_bar", tree.Elevation.TabBar)
	printShadow("card", tree.Elevation.Card)
	printShadow("overlay", tree.Elevation.Overlay)

	fmt.Println(SectionStyle.Render("blur"))
	printToken("enabled", "%v", tree.Blur.Enabled)
	printToken("header_intensity", "%d", tree.Blur.HeaderIntensity)
	printToken("tab_bar_intensity", "%d", tree.Blur.TabBarIntensity)

	fmt.Println(SectionStyle.Render("animation"))
	printMotion("tab_switch", tree.Animation.TabSwitch)
	printMotion("header_transition", tree.Animation.HeaderTransition)
	printMotion("press", tree.Animation.Press)

	return nil
}

// printToken prints one name/value token row.
func printToken(name, format string, value interface{}) {
	fmt.Printf("%s %s\n", RenderLabel("  "+name, 26), ValueStyle.Render(fmt.Sprintf(format, value)))
}

// printTypeStyle prints a resolved type style in compact form.
func printTypeStyle(name string, ts visual.OpticalTypography) {
	v := fmt.Sprintf("%gpt w%s tracking %+.1f line %g", ts.FontSize, ts.Weight, ts.LetterSpacing, ts.LineHeight)
	if ts.FontFamily != "" {
		v += " " + ts.FontFamily
	}
	printToken(name, "%s", v)
}

// printShadow prints shadow parameters in compact form.
func printShadow(name string, s visual.ShadowParams) {
	if s.UsesNativeElevation {
		printToken(name, "%s", fmt.Sprintf("native elevation %d", s.AndroidElevation))
		return
	}
	printToken(name, "%s", fmt.Sprintf("blur %.2f offsetY %.2f opacity %.2f", s.BlurRadius, s.OffsetY, s.Opacity))
}

// printMotion prints one motion token row.
func printMotion(name string, m tokens.Motion) {
	printToken(name, "%s", fmt.Sprintf("%dms %s", m.DurationMS, m.Easing))
}
