package core

import (
	"path/filepath"
	"strings"
)

// TemplateData feeds scaffold placeholder substitution.
type TemplateData struct {
	Title string
}

// ProcessFilename strips the .tmpl marker from scaffold filenames. Only
// marked files get placeholder substitution; everything else is copied
// byte for byte, which is what keeps the page template's insertion
// points intact.
func ProcessFilename(filename string) (string, bool) {
	if before, ok := strings.CutSuffix(filename, ".tmpl"); ok {
		return before, true
	}
	return filename, false
}

func ProcessContent(content []byte, isTemplate bool, data TemplateData) []byte {
	if !isTemplate {
		return content
	}

	result := string(content)
	result = strings.ReplaceAll(result, "{{.Title}}", data.Title)

	return []byte(result)
}

// DeriveDeckTitle picks a starter title from the project directory name.
func DeriveDeckTitle(projectDir string) string {
	base := filepath.Base(projectDir)
	if base == "." || base == "/" || base == "" {
		return "My deck"
	}
	return base
}
