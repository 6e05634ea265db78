package format

import (
	"bytes"
	"text/template"
)

// Tprintf renders a named-parameter template, e.g.
// Tprintf("{{.name}} is great", map[string]interface{}{"name": "tool"})
func Tprintf(tmpl string, data map[string]interface{}) string {
	t := template.Must(template.New("tprintf").Parse(tmpl))
	buf := &bytes.Buffer{}
	if err := t.Execute(buf, data); err != nil {
		return tmpl
	}
	return buf.String()
}
