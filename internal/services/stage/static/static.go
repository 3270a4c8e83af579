// Package static embeds the stage service's pages and assets: the stream
// overlay, the operator console, and the roster page.
package static

import "embed"

// FS exposes stage static assets for HTTP serving.
//
//go:embed *.html *.css *.js
var FS embed.FS
