package pipeline

import (
	"bytes"
	"fmt"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"dtc/config"
)

// Values holds the variables available to output name templates.
type Values struct {
	Context string   // name of the template field being expanded
	Name    string   // source base name, without extension
	Target  string   // target format name
	Date    string   // run date, YYYY-MM-DD
	Layers  []string // layer names, lowest precedence first
	Tokens  int      // resolved token count
	RunID   string
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values.Context = string(name)

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
