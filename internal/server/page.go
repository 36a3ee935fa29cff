package server

import (
	"github.com/sw33tLie/bocheck/pkg/projects"
	"github.com/sw33tLie/bocheck/pkg/report"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const projectPlaceholder = "Choise project"

// Page renders the whole operator panel.
func Page(s Snapshot) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				TitleEl(g.Text("bocheck")),
				Link(Rel("stylesheet"), Href("/static/style.css")),
				g.If(s.Busy, Meta(g.Attr("http-equiv", "refresh"), g.Attr("content", "2"))),
			),
			Body(
				H1(g.Text("bocheck")),
				projectForm(s),
				g.If(s.Project != "", g.Group([]g.Node{
					currencyButtons(s),
					startForm(s),
				})),
				statusLine(s),
				g.If(s.ClearVisible, Form(Method("post"), Action("/clear"),
					Button(ID("clear-button"), Type("submit"), g.Text("Clear")),
				)),
				Div(ID("table-container"), g.Map(s.Tables, report.TableNode)),
			),
		),
	})
}

func projectForm(s Snapshot) g.Node {
	var options []g.Node
	if s.Project == "" {
		options = append(options, Option(Value(projectPlaceholder), Selected(), Disabled(), g.Text("Choose project")))
	}
	for _, name := range projects.Names() {
		options = append(options, Option(Value(name), g.If(name == s.Project, Selected()), g.Text(name)))
	}
	return Form(Method("post"), Action("/project"),
		Select(ID(FieldProject), Name("project"), flashClass(s, FieldProject), g.Group(options)),
		Button(Type("submit"), g.Text("Select")),
	)
}

func currencyButtons(s Snapshot) g.Node {
	buttons := make([]g.Node, 0, len(s.Buttons))
	for _, b := range s.Buttons {
		class := "button"
		if b.Active {
			class += " active"
		}
		buttons = append(buttons, Form(Class("inline"), Method("post"), Action("/toggle"),
			Input(Type("hidden"), Name("code"), Value(b.Code)),
			Button(Class(class), Type("submit"), g.Text(b.Code)),
		))
	}
	return Div(ID(FieldCurrencies), flashClass(s, FieldCurrencies), g.Group(buttons))
}

func startForm(s Snapshot) g.Node {
	return Form(Method("post"), Action("/start"),
		Input(ID(FieldCampaigns), Name("campaigns"), Type("text"), Placeholder("Enter campaigns"), Value(s.Campaigns), flashClass(s, FieldCampaigns)),
		Input(ID("percentage-input"), Name("percentage"), Type("text"), Placeholder("%(-/+)"), Value(s.Percentage)),
		Button(ID(FieldStart), Type("submit"), g.If(s.Busy, Disabled()), flashClass(s, FieldStart), g.Text("Start")),
	)
}

func statusLine(s Snapshot) g.Node {
	switch {
	case s.Busy:
		return P(ID("status"), g.Text("Running: "+s.State))
	case s.Error != "":
		return P(ID("status"), g.Text("Last run failed: "+s.Error))
	}
	return nil
}

func flashClass(s Snapshot, field string) g.Node {
	return g.If(s.Flash == field, Class("flash"))
}
