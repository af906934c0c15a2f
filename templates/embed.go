// Package templates embeds the HTML for the public pages and the admin
// console so the binary ships self-contained.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
