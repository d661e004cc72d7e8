package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"goType":   goType,
	"readFn":   func(t string) string { return "read" + goTitleCase(t) },
	"parseFn":  func(t string) string { return "parse" + goTitleCase(t) },
	"argList":  argList,
	"kindList": kindList,
	"quote":    func(s string) string { return fmt.Sprintf("%q", s) },
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	commandsTmpl +
		buildersTmpl +
		responsesTmpl +
		decodersTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// --- Template data types ---

type commandView struct {
	Name      string
	Address   string
	Doc       string
	Args      []RawFieldDef
	Reply     string
	Reports   []string
	Custom    bool
	Interface string // "Command", "Query" or "Reporter"
	HasMotor  bool
}

type responseView struct {
	Name     string
	Address  string
	Doc      string
	Fields   []RawFieldDef
	Custom   bool
	HasMotor bool
}

// --- Template definitions ---

const commandsTmpl = `{{define "commands"}}// Code generated by step-catgen. DO NOT EDIT.

package catalog
{{range .}}{{if not .Custom}}
// {{.Name}} {{.Doc}}
{{- if .Args}}
type {{.Name}} struct {
{{- range .Args}}
{{.Name}} {{goType .Type}}
{{- end}}
}
{{- else}}
type {{.Name}} struct{}
{{- end}}

func ({{.Name}}) Name() string { return {{quote .Name}} }

func ({{.Name}}) Address() string { return {{quote .Address}} }
{{if .Args}}
func (c {{.Name}}) Args() []any { return []any{ {{- argList .Args}}} }
{{- else}}
func ({{.Name}}) Args() []any { return nil }
{{- end}}
{{- if .Reply}}

func ({{.Name}}) ReplyKind() Kind { return Kind{{.Reply}} }
{{if .HasMotor}}
func (c {{.Name}}) Target() (int, bool) { return c.MotorID, true }
{{- else}}
func ({{.Name}}) Target() (int, bool) { return 0, false }
{{- end}}
{{- end}}
{{- if .Reports}}

func ({{.Name}}) ReportKinds() []Kind { return []Kind{ {{- kindList .Reports}}} }
{{- end}}
{{end}}{{end}}
{{template "builders" .}}
var (
{{- range .}}
_ {{.Interface}} = {{.Name}}{}
{{- end}}
)
{{end}}`

const buildersTmpl = `{{define "builders"}}
var commandBuilders = map[string]func(p *argParser) Command{
{{- range .}}
{{- if .Custom}}
{{quote .Name}}: build{{.Name}},
{{- else if .Args}}
{{quote .Name}}: func(p *argParser) Command {
var c {{.Name}}
{{- range .Args}}
c.{{.Name}} = p.{{parseFn .Type}}({{quote .Name}})
{{- end}}
return c
},
{{- else}}
{{quote .Name}}: func(p *argParser) Command {
return {{.Name}}{}
},
{{- end}}
{{- end}}
}
{{end}}`

const responsesTmpl = `{{define "responses"}}// Code generated by step-catgen. DO NOT EDIT.

package catalog

// Response kinds.
const (
{{- range .}}
Kind{{.Name}} Kind = {{quote .Name}}
{{- end}}
)

var knownKinds = []Kind{
{{- range .}}
Kind{{.Name}},
{{- end}}
}
{{range .}}{{if not .Custom}}
// {{.Name}} {{.Doc}}
{{- if .Fields}}
type {{.Name}} struct {
{{- range .Fields}}
{{.Name}} {{goType .Type}}
{{- end}}
}
{{- else}}
type {{.Name}} struct{}
{{- end}}

func (*{{.Name}}) Kind() Kind { return Kind{{.Name}} }

func (*{{.Name}}) Address() string { return {{quote .Address}} }
{{- if .HasMotor}}

func (r *{{.Name}}) Motor() (int, bool) { return r.MotorID, true }
{{- end}}

func decode{{.Name}}(r *argReader) Response {
var v {{.Name}}
{{- range .Fields}}
v.{{.Name}} = r.{{readFn .Type}}({{quote .Name}})
{{- end}}
return &v
}
{{end}}{{end}}
{{- template "decoders" .}}
{{end}}`

const decodersTmpl = `{{define "decoders"}}
var decoders = map[string]decodeFunc{
{{- range .}}
{{quote .Address}}: decode{{.Name}},
{{- end}}
}

var (
{{- range .}}{{if not .Custom}}
_ Response = (*{{.Name}})(nil)
{{- if .HasMotor}}
_ MotorScoped = (*{{.Name}})(nil)
{{- end}}
{{- end}}{{end}}
)
{{end}}`
