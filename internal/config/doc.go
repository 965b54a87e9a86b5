// Package config provides configuration management for swatch.
//
// Configuration is loaded from YAML files and merged in layers, with later
// sources overriding earlier ones:
//
//  1. Built-in defaults (see DefaultConfig)
//  2. User configuration (~/.config/swatch/config.yaml)
//  3. Project configuration (./.swatch/config.yaml)
//
// Scalar settings override only when set; palette entries merge by keyword,
// so a project file can replace a user-defined palette without repeating the
// rest of the list.
//
// # Configuration Structure
//
//	ui:
//	  resolveDelayMs: 750       # artificial delay before a palette renders
//	  statusMessageTtlMs: 3000  # how long copy confirmations stay visible
//	log:
//	  level: warn               # debug, info, warn, error
//	output:
//	  color: auto               # auto, always, never
//	palettes:
//	  - keyword: rainforest
//	    colors: ["#064e3b", "#065f46", "#047857", "#10b981", "#6ee7b7"]
//	    description: "Wet greens under canopy light"
//
// User palettes extend the built-in catalog. Keywords and hex digits fold to
// lowercase and keywords must not collide with built-in ones; colors must be
// exactly five #rrggbb values. Invalid entries fail loudly at startup rather
// than silently shadowing the synthesizer.
package config
