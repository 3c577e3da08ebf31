// Package web holds the HTML templates served by the application.
package web

import "embed"

// FS contains templates/*.html
//
//go:embed templates
var FS embed.FS
