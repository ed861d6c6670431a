// Package views uygulamanın HTML şablonlarını gömülü olarak taşır.
package views

import "embed"

//go:embed layouts/*.html auth/*.html app/*.html errors/*.html
var FS embed.FS
