// Package web embeds the stylesheet and boot script served under /static.
package web

import "embed"

//go:embed static/css/*.css static/js/*.js
var StaticFS embed.FS
