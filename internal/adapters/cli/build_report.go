package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

type BuildStep struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Success   bool
	Error     string
}

type cliOutputWithColors interface {
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
}

// BuildIssue is one warning or error surfaced by the report. Where
// points at what went wrong, usually a file:line location.
type BuildIssue struct {
	Where   string
	Message string
	Details []string
}

type BuildReport struct {
	colors         cliOutputWithColors
	steps          []BuildStep
	warnings       []BuildIssue
	errors         []BuildIssue
	startTime      time.Time
	slideCount     int
	artifactPath   string
	artifactSize   int
	artifactDigest string
	hasFailures    bool
}

func NewBuildReport(colors cliOutputWithColors, artifactPath string) *BuildReport {
	return &BuildReport{
		colors:       colors,
		steps:        make([]BuildStep, 0),
		warnings:     make([]BuildIssue, 0),
		errors:       make([]BuildIssue, 0),
		startTime:    time.Now(),
		artifactPath: artifactPath,
	}
}

func (r *BuildReport) SetSlideCount(count int) {
	r.slideCount = count
}

func (r *BuildReport) SetArtifact(size int, digest string) {
	r.artifactSize = size
	r.artifactDigest = digest
}

func (r *BuildReport) StartStep(name string) *BuildStep {
	step := BuildStep{
		Name:      name,
		StartTime: time.Now(),
	}
	r.steps = append(r.steps, step)
	return &r.steps[len(r.steps)-1]
}

func (r *BuildReport) EndStep(step *BuildStep, success bool, err string) {
	step.EndTime = time.Now()
	step.Success = success
	step.Error = err
	if !success {
		r.hasFailures = true
	}
}

func (r *BuildReport) AddWarning(where string, message string, details []string) {
	r.warnings = append(r.warnings, BuildIssue{
		Where:   where,
		Message: message,
		Details: details,
	})
}

func (r *BuildReport) AddError(where string, message string, details []string) {
	r.errors = append(r.errors, BuildIssue{
		Where:   where,
		Message: message,
		Details: details,
	})
	r.hasFailures = true
}

func (r *BuildReport) Render() {
	duration := time.Since(r.startTime)

	if len(r.errors) == 0 && len(r.warnings) == 0 {
		r.renderMinimal(duration)
	} else {
		r.renderVerbose(duration)
	}
}

func (r *BuildReport) renderMinimal(duration time.Duration) {
	fmt.Printf("  "+r.colors.Green("✓ ")+"%d slides\n", r.slideCount)

	stepLines := make([]string, 0, len(r.steps))
	allSuccessful := true

	for _, step := range r.steps {
		if !step.Success {
			allSuccessful = false
			stepLines = append(stepLines, "  "+r.colors.Red("✗ ")+step.Name)
		}
	}

	if allSuccessful {
		fmt.Printf("  "+r.colors.Green("✓ ")+"Build complete in %s\n", formatDuration(duration))
	} else {
		fmt.Println()
		fmt.Println("Failed steps:")
		for _, line := range stepLines {
			fmt.Println(line)
		}
	}

	r.renderArtifactLine()
}

func (r *BuildReport) renderVerbose(duration time.Duration) {
	fmt.Printf("  %d slides\n", r.slideCount)

	fmt.Println()
	for _, step := range r.steps {
		status := r.colors.Green("✓")
		if !step.Success {
			status = r.colors.Red("✗")
		}
		fmt.Printf("  %s %s\n", status, step.Name)
	}

	if len(r.errors) > 0 {
		fmt.Println()
		fmt.Fprintf(os.Stderr, "  "+r.colors.Red("✗ ")+"Errors (%d):\n", len(r.errors))
		r.renderIssues(os.Stderr, r.errors, r.colors.Red("✗"))
	}

	if len(r.warnings) > 0 {
		fmt.Println()
		fmt.Printf("  "+r.colors.Yellow("⚠ ")+"Warnings (%d):\n", len(r.warnings))
		r.renderIssues(os.Stdout, r.warnings, r.colors.Yellow("⚠"))
	}

	fmt.Println()
	if len(r.errors) > 0 {
		fmt.Fprintf(os.Stderr, "  %s\n", r.colors.Red(fmt.Sprintf("Build failed after %s", formatDuration(duration))))
	} else {
		fmt.Printf("  "+r.colors.Green("✓ ")+"Build complete in %s\n", formatDuration(duration))
	}

	r.renderArtifactLine()
}

func (r *BuildReport) renderArtifactLine() {
	if r.artifactPath == "" {
		return
	}

	line := "Output: " + r.artifactPath
	if r.artifactSize > 0 {
		line += fmt.Sprintf(" (%s, sha256 %s)", humanize.IBytes(uint64(r.artifactSize)), r.artifactDigest)
	}
	fmt.Printf("\n  %s\n", r.colors.Gray(line))
}

func (r *BuildReport) renderIssues(w io.Writer, issues []BuildIssue, mark string) {
	for _, issue := range issues {
		fmt.Fprintf(w, "  %s %s\n", mark, issue.Where)
		fmt.Fprintf(w, "    %s\n", issue.Message)

		for _, detail := range deduplicateStrings(issue.Details) {
			fmt.Fprintf(w, "      • %s\n", detail)
		}
	}
}

func (r *BuildReport) HasFailures() bool {
	return r.hasFailures
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

// deduplicateStrings collapses repeats while keeping first-seen order,
// so warning lists stay in source order.
func deduplicateStrings(items []string) []string {
	if len(items) <= 1 {
		return items
	}

	counts := make(map[string]int, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		if counts[item] == 0 {
			order = append(order, item)
		}
		counts[item]++
	}

	result := make([]string, 0, len(order))
	for _, item := range order {
		if counts[item] > 1 {
			result = append(result, fmt.Sprintf("%s (%d occurrences)", item, counts[item]))
		} else {
			result = append(result, item)
		}
	}

	return result
}
