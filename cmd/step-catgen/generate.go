package main

import (
	"slices"
	"strings"
)

// GenerateCommands renders commands_gen.go.
func GenerateCommands(cat *RawCatalog) (string, error) {
	views := make([]commandView, 0, len(cat.Commands))
	for _, c := range cat.Commands {
		v := commandView{
			Name:      c.Name,
			Address:   c.Address,
			Doc:       commandDoc(c),
			Args:      c.Args,
			Reply:     c.Reply,
			Reports:   c.Reports,
			Custom:    c.Custom,
			Interface: "Command",
			HasMotor:  hasMotor(c.Args),
		}
		switch {
		case c.Reply != "":
			v.Interface = "Query"
		case len(c.Reports) > 0:
			v.Interface = "Reporter"
		}
		views = append(views, v)
	}

	var b strings.Builder
	renderTemplate(&b, "commands", views)
	return b.String(), nil
}

// GenerateResponses renders responses_gen.go.
func GenerateResponses(cat *RawCatalog) (string, error) {
	views := make([]responseView, 0, len(cat.Responses))
	for _, r := range cat.Responses {
		views = append(views, responseView{
			Name:     r.Name,
			Address:  r.Address,
			Doc:      responseDoc(r, cat),
			Fields:   r.Fields,
			Custom:   r.Custom,
			HasMotor: hasMotor(r.Fields),
		})
	}

	var b strings.Builder
	renderTemplate(&b, "responses", views)
	return b.String(), nil
}

func commandDoc(c RawCommandDef) string {
	switch {
	case c.Doc != "":
		return c.Doc
	case c.Reply != "":
		return "requests a " + c.Reply + " reply."
	case len(c.Reports) > 0:
		return "switches the automatic " + strings.Join(c.Reports, " and ") + " report on or off."
	default:
		return "sends " + c.Address + "."
	}
}

// responseDoc describes a response by the commands that produce it.
func responseDoc(r RawResponseDef, cat *RawCatalog) string {
	if r.Doc != "" {
		return r.Doc
	}
	var replies, reporters []string
	for _, c := range cat.Commands {
		if c.Reply == r.Name {
			replies = append(replies, c.Name)
		}
		if slices.Contains(c.Reports, r.Name) {
			reporters = append(reporters, c.Name)
		}
	}
	var b strings.Builder
	b.WriteString("is ")
	if len(replies) > 0 {
		b.WriteString("the reply to " + strings.Join(replies, " and "))
	}
	if len(reporters) > 0 {
		if len(replies) > 0 {
			b.WriteString(" and ")
		}
		b.WriteString("the automatic report enabled by " + strings.Join(reporters, " and "))
	}
	if len(replies) == 0 && len(reporters) == 0 {
		b.WriteString("an automatic board message")
	}
	b.WriteString(".")
	return b.String()
}

func hasMotor(fields []RawFieldDef) bool {
	return len(fields) > 0 && fields[0].Name == "MotorID" && fields[0].Type == "int"
}

func goType(t string) string {
	if t == "float" {
		return "float32"
	}
	return t
}

func goTitleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func argList(fields []RawFieldDef) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = "c." + f.Name
	}
	return strings.Join(names, ", ")
}

func kindList(names []string) string {
	kinds := make([]string, len(names))
	for i, n := range names {
		kinds[i] = "Kind" + n
	}
	return strings.Join(kinds, ", ")
}
