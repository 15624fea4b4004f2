// Package web embeds the static page shell served at "/".
package web

import "embed"

// Dir is the directory inside FS holding the site root.
const Dir = "public"

// FS holds the page shell and its assets.
//
//go:embed public
var FS embed.FS
