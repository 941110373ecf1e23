// Package web holds the embedded dashboard served next to the JSON API.
package web

import "embed"

// Static embeds the dashboard assets.
//
//go:embed static
var Static embed.FS
