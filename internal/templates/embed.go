// Package templates embeds the scaffolds `lantern init` writes into a
// fresh project directory.
package templates

import (
	"embed"
	"errors"
	"io/fs"
)

//go:embed all:minimal
var minimalFS embed.FS

//go:embed all:talk
var talkFS embed.FS

// Names lists the scaffolds `lantern init` accepts.
var Names = []string{"minimal", "talk"}

var ErrUnknownScaffold = errors.New("unknown scaffold name")

func GetScaffold(name string) (fs.FS, error) {
	switch name {
	case "minimal":
		return fs.Sub(minimalFS, "minimal")
	case "talk":
		return fs.Sub(talkFS, "talk")
	default:
		return nil, ErrUnknownScaffold
	}
}
