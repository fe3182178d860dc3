package render

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/lanternhq/lantern/internal/core"
)

var imgSrcPattern = regexp.MustCompile(`(<img[^>]*?\ssrc=")([^"]+)(")`)

// inlineImages rewrites local <img> references in rendered prose to
// data: URIs so the artifact stays a single file. Anything it cannot
// embed is left untouched and reported as a warning.
func (r *Renderer) inlineImages(html string, line int) (string, []string) {
	var warnings []string

	out := imgSrcPattern.ReplaceAllStringFunc(html, func(m string) string {
		parts := imgSrcPattern.FindStringSubmatch(m)
		src := parts[2]

		if strings.HasPrefix(src, "data:") {
			return m
		}

		if err := core.ValidateAssetPath(src); err != nil {
			warnings = append(warnings, fmt.Sprintf(
				"image %q at line %d stays an external reference, the artifact will not be self-contained: %v",
				src, line, err))
			return m
		}

		ct := core.GetContentType(src)
		if !strings.HasPrefix(ct, "image/") {
			warnings = append(warnings, fmt.Sprintf(
				"image %q at line %d has no known image type, leaving it as is", src, line))
			return m
		}

		data, err := r.assets(src)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf(
				"image %q at line %d could not be read, leaving it as is: %v", src, line, err))
			return m
		}

		return parts[1] + "data:" + ct + ";base64," + base64.StdEncoding.EncodeToString(data) + parts[3]
	})

	return out, warnings
}
