// cmd/schemagen/generate.go
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"

	"github.com/tamzrod/drivecfg/internal/schema"
)

const schemaImport = "github.com/tamzrod/drivecfg/internal/schema"

var tmpl = template.Must(template.New("table").Parse(`// Code generated by schemagen from {{.Source}}; DO NOT EDIT.

package {{.Package}}
{{if .Qual}}
import "` + schemaImport + `"
{{end}}
// {{.Var}} slot indices.
const (
{{- range $i, $it := .Items}}
	{{$it.Ident}}{{if eq $i 0}} = iota{{end}}
{{- end}}
)

// {{.Var}} is the parameter table generated from {{.Source}}.
var {{.Var}} = {{.Qual}}NewTable(
{{- range .Items}}
	{{$.Qual}}Item{Field: {{printf "%q" .Field}}, Display: {{printf "%q" .Display}}, Default: {{.Default}}},
{{- end}}
)
`))

type genItem struct {
	schema.Item
	Ident string
}

type genInput struct {
	Source  string
	Package string
	Var     string
	Qual    string
	Items   []genItem
}

// generate renders a gofmt'd table declaration for items.
func generate(source, pkg, varName string, items []schema.Item) ([]byte, error) {
	in := genInput{
		Source:  source,
		Package: pkg,
		Var:     varName,
	}
	if pkg != "schema" {
		in.Qual = "schema."
	}

	seen := make(map[string]string, len(items))
	for _, it := range items {
		id := varName + exportedName(it.Field)
		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("fields %q and %q both map to identifier %s", prev, it.Field, id)
		}
		seen[id] = it.Field
		in.Items = append(in.Items, genItem{Item: it, Ident: id})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, in); err != nil {
		return nil, err
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return out, nil
}

// exportedName turns "pi_v_scale" into "PiVScale".
// Anything that is not a letter or digit separates words.
func exportedName(field string) string {
	words := strings.FieldsFunc(field, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder
	for _, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}
