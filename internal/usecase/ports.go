package usecase

import (
	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/lanternhq/lantern/internal/deck"
	"github.com/lanternhq/lantern/internal/render"
)

type Renderer interface {
	Render(d *deck.Deck, templateSrc []byte) (*render.Artifact, error)
}

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string)
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
}

type FileSystem = vfs.FileSystem
