package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/lanternhq/lantern/internal/adapters/cli"
	"github.com/lanternhq/lantern/internal/core"
	"github.com/lanternhq/lantern/internal/deck"
)

var (
	ErrSourceNotFound   = errors.New("deck source not found")
	ErrTemplateNotFound = errors.New("page template not found")
)

type BuildInput struct {
	Source   string
	Template string
	Output   string
}

type BuildOutput struct {
	Success bool
	Error   error
}

type BuildService struct {
	renderer Renderer
	fs       FileSystem
	cli      CLIOutput
}

func NewBuildService(renderer Renderer, fs FileSystem, cli CLIOutput) *BuildService {
	return &BuildService{
		renderer: renderer,
		fs:       fs,
		cli:      cli,
	}
}

// BuildDeck runs the whole pipeline: read both inputs, parse, render,
// write the artifact. The artifact is rendered fully in memory and
// written in one shot, so a failing build never leaves a partial file.
func (s *BuildService) BuildDeck(ctx context.Context, input BuildInput) BuildOutput {
	s.cli.PrintHeader("Lantern Build")

	report := cli.NewBuildReport(s.cli, input.Output)

	stepSource := report.StartStep("Reading deck source")
	source, err := vfs.ReadFile(s.fs, input.Source)
	if err != nil {
		report.EndStep(stepSource, false, err.Error())
		if vfs.IsErrNotExist(err) {
			return BuildOutput{Success: false, Error: fmt.Errorf("%w: %s", ErrSourceNotFound, input.Source)}
		}
		return BuildOutput{Success: false, Error: fmt.Errorf("failed to read deck source: %w", err)}
	}
	report.EndStep(stepSource, true, "")

	stepTemplate := report.StartStep("Reading page template")
	templateSrc, err := vfs.ReadFile(s.fs, input.Template)
	if err != nil {
		report.EndStep(stepTemplate, false, err.Error())
		if vfs.IsErrNotExist(err) {
			return BuildOutput{Success: false, Error: fmt.Errorf("%w: %s", ErrTemplateNotFound, input.Template)}
		}
		return BuildOutput{Success: false, Error: fmt.Errorf("failed to read page template: %w", err)}
	}
	report.EndStep(stepTemplate, true, "")

	stepParse := report.StartStep("Parsing slides")
	d := deck.Parse(source)
	report.EndStep(stepParse, true, "")
	report.SetSlideCount(len(d.Slides))
	for _, w := range d.Warnings {
		report.AddWarning(fmt.Sprintf("%s:%d", input.Source, w.Line), w.Message, nil)
	}

	stepRender := report.StartStep("Rendering presentation")
	artifact, err := s.renderer.Render(d, templateSrc)
	if err != nil {
		report.EndStep(stepRender, false, err.Error())
		// Template failures are fatal and reach the user verbatim.
		return BuildOutput{Success: false, Error: err}
	}
	report.EndStep(stepRender, true, "")
	for _, w := range artifact.Warnings {
		report.AddWarning(input.Source, w, nil)
	}

	stepWrite := report.StartStep("Writing artifact")
	if dir := filepath.Dir(input.Output); dir != "." && dir != "/" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			report.EndStep(stepWrite, false, err.Error())
			return BuildOutput{Success: false, Error: fmt.Errorf("failed to create output directory: %w", err)}
		}
	}
	if err := vfs.WriteFile(s.fs, input.Output, artifact.HTML, 0o644); err != nil {
		report.EndStep(stepWrite, false, err.Error())
		return BuildOutput{Success: false, Error: fmt.Errorf("failed to write artifact: %w", err)}
	}
	report.EndStep(stepWrite, true, "")
	report.SetArtifact(len(artifact.HTML), core.ShortDigest(core.HashContent(artifact.HTML)))

	report.Render()

	return BuildOutput{Success: !report.HasFailures()}
}
