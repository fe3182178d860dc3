package usecase

import (
	"context"
	"fmt"

	"github.com/mandelsoft/vfs/pkg/vfs"
)

type CleanInput struct {
	Output string
}

type CleanOutput struct {
	Success bool
	Error   error
	Removed bool
}

type CleanService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewCleanService(fs FileSystem, cli CLIOutput) *CleanService {
	return &CleanService{
		fs:  fs,
		cli: cli,
	}
}

// CleanArtifact removes the build output. A missing artifact is not an
// error, so running clean twice behaves the same as running it once.
func (s *CleanService) CleanArtifact(ctx context.Context, input CleanInput) CleanOutput {
	err := s.fs.Remove(input.Output)
	switch {
	case err == nil:
		s.cli.PrintSuccess("Removed %s", input.Output)
		return CleanOutput{Success: true, Removed: true}
	case vfs.IsErrNotExist(err):
		s.cli.PrintStep("No artifact at %s", input.Output)
		return CleanOutput{Success: true}
	default:
		return CleanOutput{Success: false, Error: fmt.Errorf("failed to remove artifact: %w", err)}
	}
}
