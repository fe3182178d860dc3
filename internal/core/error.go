package core

import (
	"html/template"
)

// ErrorData fills ErrorTemplate. Message carries the render failure
// verbatim, including any position html/template reports.
type ErrorData struct {
	Message string
}

// ErrorTemplate is the page the preview server shows when the deck
// fails to render. It never ends up in a build artifact.
var ErrorTemplate = template.Must(template.New("error").Parse(`<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Build error</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 50px auto; padding: 0 20px; }
        h1 { color: #e74c3c; }
        pre { background: #f8f9fa; padding: 15px; border-radius: 5px; overflow-x: auto; white-space: pre-wrap; }
    </style>
</head>
<body>
    <h1>Build error</h1>
    <pre>{{.Message}}</pre>
    <p>Fix the input and refresh this page.</p>
</body>
</html>`))
