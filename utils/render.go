package utils

import (
	"bytes"
	"fmt"
	"html/template"
)

// RenderTemplate executes an HTML template file with the given data and
// returns the document. Callers only ever pass the result along; nothing
// here inspects it.
func RenderTemplate(templatePath string, data any) (string, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("template parse error: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("template execution error: %w", err)
	}
	return body.String(), nil
}
