package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/lanternhq/lantern/internal/core"
	"github.com/lanternhq/lantern/internal/templates"
)

type InitInput struct {
	ProjectDir string
	Scaffold   string
}

type InitOutput struct {
	Success bool
	Error   error
	Created int
}

type InitService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewInitService(fs FileSystem, cli CLIOutput) *InitService {
	return &InitService{
		fs:  fs,
		cli: cli,
	}
}

// InitProject writes a scaffold into the project directory. An existing
// non-empty directory is refused so init never clobbers someone's deck.
func (s *InitService) InitProject(ctx context.Context, input InitInput) InitOutput {
	s.cli.PrintHeader("Lantern Init")

	if _, err := s.fs.Stat(input.ProjectDir); err == nil {
		entries, err := vfs.ReadDir(s.fs, input.ProjectDir)
		if err != nil {
			return InitOutput{Success: false, Error: fmt.Errorf("failed to read directory: %w", err)}
		}
		if len(entries) > 0 {
			return InitOutput{Success: false, Error: fmt.Errorf("directory %q already exists and is not empty", input.ProjectDir)}
		}
	}

	scaffoldFS, err := templates.GetScaffold(input.Scaffold)
	if err != nil {
		if errors.Is(err, templates.ErrUnknownScaffold) {
			return InitOutput{Success: false, Error: fmt.Errorf("unknown scaffold %q (have: %v)", input.Scaffold, templates.Names)}
		}
		return InitOutput{Success: false, Error: err}
	}

	if err := s.fs.MkdirAll(input.ProjectDir, 0o755); err != nil {
		return InitOutput{Success: false, Error: fmt.Errorf("failed to create project directory: %w", err)}
	}

	data := core.TemplateData{
		Title: core.DeriveDeckTitle(input.ProjectDir),
	}

	created := 0
	err = fs.WalkDir(scaffoldFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == "." {
				return nil
			}
			return s.fs.MkdirAll(filepath.Join(input.ProjectDir, path), 0o755)
		}

		content, err := fs.ReadFile(scaffoldFS, path)
		if err != nil {
			return fmt.Errorf("failed to read scaffold file %s: %w", path, err)
		}

		targetName, isTemplate := core.ProcessFilename(path)
		targetPath := filepath.Join(input.ProjectDir, targetName)

		processed := core.ProcessContent(content, isTemplate, data)
		if err := vfs.WriteFile(s.fs, targetPath, processed, 0o644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", targetPath, err)
		}

		if isTemplate {
			s.cli.PrintFile(targetPath + " (generated)")
		} else {
			s.cli.PrintFile(targetPath)
		}
		created++

		return nil
	})
	if err != nil {
		return InitOutput{Success: false, Error: err}
	}

	s.cli.PrintDone(fmt.Sprintf("Created %d files from the %q scaffold", created, input.Scaffold))

	return InitOutput{Success: true, Created: created}
}
