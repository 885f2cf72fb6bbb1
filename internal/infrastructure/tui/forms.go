package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/doeshing/tams-go/internal/app"
	"github.com/doeshing/tams-go/internal/application/widgets"
	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/view"
)

// form binds text inputs to one widget's draft.
type form struct {
	widget view.Widget
	title  string
	fields []textinput.Model
	focus  int
	target widgets.Widget
	// store copies the field values into the widget draft.
	store func(values []string)
	// load reads the widget draft back into field values.
	load func() []string
	// results renders widget-specific output below the form.
	results func() []domain.Specialist
}

func newForms(ws app.Widgets) map[view.Widget]*form {
	return map[view.Widget]*form{
		view.WidgetVitals: {
			widget: view.WidgetVitals,
			title:  "Log vitals",
			fields: []textinput.Model{newInput("heart rate (bpm)", false), newInput("temperature (°C)", false)},
			target: ws.Vitals,
			store: func(v []string) {
				ws.Vitals.Draft = domain.VitalsDraft{HeartRate: v[0], Temperature: v[1]}
			},
			load: func() []string {
				return []string{ws.Vitals.Draft.HeartRate, ws.Vitals.Draft.Temperature}
			},
		},
		view.WidgetSymptoms: {
			widget: view.WidgetSymptoms,
			title:  "Report symptoms",
			fields: []textinput.Model{newInput("describe your symptoms", false)},
			target: ws.Symptoms,
			store: func(v []string) {
				ws.Symptoms.Draft = domain.SymptomDraft{Description: v[0]}
			},
			load: func() []string {
				return []string{ws.Symptoms.Draft.Description}
			},
		},
		view.WidgetSpecialists: {
			widget: view.WidgetSpecialists,
			title:  "Find a specialist",
			fields: []textinput.Model{newInput("specialty", false), newInput("location", false)},
			target: ws.Specialists,
			store: func(v []string) {
				ws.Specialists.Query = domain.SpecialistQuery{Specialty: v[0], Location: v[1]}
			},
			load: func() []string {
				return []string{ws.Specialists.Query.Specialty, ws.Specialists.Query.Location}
			},
			results: func() []domain.Specialist {
				return ws.Specialists.Results
			},
		},
		view.WidgetPrescriptions: {
			widget: view.WidgetPrescriptions,
			title:  "Issue prescription",
			fields: []textinput.Model{newInput("patient name", false), newInput("medication", false)},
			target: ws.Prescriptions,
			store: func(v []string) {
				ws.Prescriptions.Draft = domain.PrescriptionDraft{PatientName: v[0], Medication: v[1]}
			},
			load: func() []string {
				return []string{ws.Prescriptions.Draft.PatientName, ws.Prescriptions.Draft.Medication}
			},
		},
	}
}

func (f *form) values() []string {
	out := make([]string, len(f.fields))
	for i, field := range f.fields {
		out[i] = field.Value()
	}
	return out
}

func (f *form) reload() {
	for i, v := range f.load() {
		f.fields[i].SetValue(v)
	}
}

func (f *form) setFocus(i int) {
	n := len(f.fields)
	f.focus = ((i % n) + n) % n
	for idx := range f.fields {
		if idx == f.focus {
			f.fields[idx].Focus()
		} else {
			f.fields[idx].Blur()
		}
	}
}
