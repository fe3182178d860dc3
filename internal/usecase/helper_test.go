package usecase_test

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/lanternhq/lantern/internal/render"
	"github.com/lanternhq/lantern/internal/usecase"
)

const testTemplate = `<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title><style>{{.Styles}}</style></head>
<body><main class="deck">{{.Slides}}</main><script>{{.Script}}</script></body>
</html>`

const testDeck = `# First light

Hello from the deck.

---

## Second

- one
- two

::: notes
remember to breathe
:::
`

// fakeOutput records everything a service says so tests can assert on
// user-visible behavior without a terminal.
type fakeOutput struct {
	lines []string
	files []string
}

func (o *fakeOutput) PrintHeader(msg string) { o.lines = append(o.lines, msg) }

func (o *fakeOutput) PrintStep(msg string, args ...any) {
	o.lines = append(o.lines, fmt.Sprintf(msg, args...))
}

func (o *fakeOutput) PrintSuccess(msg string, args ...any) {
	o.lines = append(o.lines, fmt.Sprintf(msg, args...))
}

func (o *fakeOutput) PrintWarning(msg string, args ...any) {
	o.lines = append(o.lines, fmt.Sprintf(msg, args...))
}

func (o *fakeOutput) PrintError(msg string, args ...any) {
	o.lines = append(o.lines, fmt.Sprintf(msg, args...))
}

func (o *fakeOutput) PrintFile(path string) { o.files = append(o.files, path) }

func (o *fakeOutput) PrintDone(msg string) { o.lines = append(o.lines, msg) }

func (o *fakeOutput) Green(text string) string  { return text }
func (o *fakeOutput) Yellow(text string) string { return text }
func (o *fakeOutput) Red(text string) string    { return text }
func (o *fakeOutput) Gray(text string) string   { return text }

func (o *fakeOutput) joined() string { return strings.Join(o.lines, "\n") }

func newMemFS(files map[string]string) vfs.FileSystem {
	fs := memoryfs.New()
	for path, content := range files {
		if dir := filepath.Dir(path); dir != "." {
			if err := fs.MkdirAll(dir, 0o755); err != nil {
				panic(err)
			}
		}
		if err := vfs.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			panic(err)
		}
	}
	return fs
}

func newBuildService(fs vfs.FileSystem) (*usecase.BuildService, *fakeOutput) {
	out := &fakeOutput{}
	return usecase.NewBuildService(render.New(render.Options{}), fs, out), out
}
