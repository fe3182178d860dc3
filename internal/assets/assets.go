// Package assets carries the static pieces every artifact embeds: the
// deck theme and the slide navigation script.
package assets

import (
	_ "embed"
)

//go:embed theme.css
var ThemeCSS string

//go:embed nav.js
var NavScript string
