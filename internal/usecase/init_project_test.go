package usecase_test

import (
	"context"
	"testing"

	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanternhq/lantern/internal/usecase"
)

func TestInitProjectScaffolds(t *testing.T) {
	t.Parallel()

	fs := newMemFS(nil)
	out := &fakeOutput{}
	svc := usecase.NewInitService(fs, out)

	result := svc.InitProject(context.Background(), usecase.InitInput{
		ProjectDir: "my-talk",
		Scaffold:   "minimal",
	})
	require.NoError(t, result.Error)
	assert.True(t, result.Success)
	assert.Equal(t, 4, result.Created)
	assert.Len(t, out.files, 4)

	for _, file := range []string{"my-talk/slides.md", "my-talk/template.html", "my-talk/lantern.json", "my-talk/.gitignore"} {
		if _, err := fs.Stat(file); err != nil {
			t.Errorf("scaffold should create %s: %v", file, err)
		}
	}

	slides, err := vfs.ReadFile(fs, "my-talk/slides.md")
	require.NoError(t, err)
	assert.Contains(t, string(slides), "# my-talk", "deck title should come from the directory name")
	assert.NotContains(t, string(slides), "{{.Title}}")

	tmpl, err := vfs.ReadFile(fs, "my-talk/template.html")
	require.NoError(t, err)
	assert.Contains(t, string(tmpl), "{{.Slides}}", "page template insertion points must survive scaffolding")
}

func TestInitProjectBuildsCleanly(t *testing.T) {
	t.Parallel()

	fs := newMemFS(nil)
	out := &fakeOutput{}
	require.True(t, usecase.NewInitService(fs, out).InitProject(context.Background(), usecase.InitInput{
		ProjectDir: "talk",
		Scaffold:   "talk",
	}).Success)

	svc, _ := newBuildService(fs)
	result := svc.BuildDeck(context.Background(), usecase.BuildInput{
		Source:   "talk/slides.md",
		Template: "talk/template.html",
		Output:   "talk/index.html",
	})
	require.NoError(t, result.Error)
	assert.True(t, result.Success, "a fresh scaffold must build without errors")

	html, err := vfs.ReadFile(fs, "talk/index.html")
	require.NoError(t, err)
	assert.Contains(t, string(html), `<section class="slide"`)
}

func TestInitProjectRefusesNonEmptyDir(t *testing.T) {
	t.Parallel()

	fs := newMemFS(map[string]string{
		"existing/notes.txt": "precious",
	})
	out := &fakeOutput{}
	svc := usecase.NewInitService(fs, out)

	result := svc.InitProject(context.Background(), usecase.InitInput{
		ProjectDir: "existing",
		Scaffold:   "minimal",
	})
	assert.False(t, result.Success)
	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "not empty")

	content, err := vfs.ReadFile(fs, "existing/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "precious", string(content))
}

func TestInitProjectUnknownScaffold(t *testing.T) {
	t.Parallel()

	fs := newMemFS(nil)
	out := &fakeOutput{}
	svc := usecase.NewInitService(fs, out)

	result := svc.InitProject(context.Background(), usecase.InitInput{
		ProjectDir: "deck",
		Scaffold:   "fancy",
	})
	assert.False(t, result.Success)
	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "unknown scaffold")
}
