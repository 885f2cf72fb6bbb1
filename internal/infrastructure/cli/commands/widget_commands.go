package commands

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/tams-go/internal/app"
	"github.com/doeshing/tams-go/internal/application/widgets"
	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/infrastructure/cli/helpers"
	"github.com/doeshing/tams-go/internal/view"
)

// NewVitalsCommand logs heart rate and temperature for the signed-in patient.
func NewVitalsCommand(container *app.Container) *cobra.Command {
	var (
		creds helpers.CredentialFlags
		draft domain.VitalsDraft
	)

	cmd := &cobra.Command{
		Use:   "vitals",
		Short: "Log heart rate and temperature (patients)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWidget(cmd, container, creds, view.WidgetVitals, func(ws app.Widgets) widgets.Widget {
				ws.Vitals.Draft = draft
				return ws.Vitals
			}, nil)
		},
	}
	creds.Bind(cmd)
	cmd.Flags().StringVar(&draft.HeartRate, "heart-rate", "", "Heart rate in bpm")
	cmd.Flags().StringVar(&draft.Temperature, "temp", "", "Body temperature in °C")
	return cmd
}

// NewSymptomsCommand shares a symptom description with the care team.
func NewSymptomsCommand(container *app.Container) *cobra.Command {
	var (
		creds helpers.CredentialFlags
		draft domain.SymptomDraft
	)

	cmd := &cobra.Command{
		Use:   "symptoms",
		Short: "Report symptoms (patients)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWidget(cmd, container, creds, view.WidgetSymptoms, func(ws app.Widgets) widgets.Widget {
				ws.Symptoms.Draft = draft
				return ws.Symptoms
			}, nil)
		},
	}
	creds.Bind(cmd)
	cmd.Flags().StringVarP(&draft.Description, "description", "d", "", "What you are experiencing")
	return cmd
}

// NewSpecialistsCommand searches the specialist directory.
func NewSpecialistsCommand(container *app.Container) *cobra.Command {
	var (
		creds helpers.CredentialFlags
		query domain.SpecialistQuery
	)

	cmd := &cobra.Command{
		Use:   "specialists",
		Short: "Search specialists by specialty and location",
		RunE: func(cmd *cobra.Command, args []string) error {
			var search *widgets.SpecialistSearch
			return runWidget(cmd, container, creds, view.WidgetSpecialists, func(ws app.Widgets) widgets.Widget {
				search = ws.Specialists
				search.Query = query
				return search
			}, func(out *helpers.Output) {
				out.Specialists(search.Results)
			})
		},
	}
	creds.Bind(cmd)
	cmd.Flags().StringVar(&query.Specialty, "specialty", "", "Filter by specialty")
	cmd.Flags().StringVar(&query.Location, "location", "", "Filter by location")
	return cmd
}

// NewPrescribeCommand issues a prescription as the signed-in doctor.
func NewPrescribeCommand(container *app.Container) *cobra.Command {
	var (
		creds helpers.CredentialFlags
		draft domain.PrescriptionDraft
	)

	cmd := &cobra.Command{
		Use:   "prescribe",
		Short: "Issue a prescription (doctors)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWidget(cmd, container, creds, view.WidgetPrescriptions, func(ws app.Widgets) widgets.Widget {
				ws.Prescriptions.Draft = draft
				return ws.Prescriptions
			}, nil)
		},
	}
	creds.Bind(cmd)
	cmd.Flags().StringVar(&draft.PatientName, "patient", "", "Patient name")
	cmd.Flags().StringVar(&draft.Medication, "meds", "", "Medication and dosage")
	return cmd
}

// runWidget signs in, gates on the dashboard, then submits the prepared widget.
// after runs only when the submission succeeded.
func runWidget(
	cmd *cobra.Command,
	container *app.Container,
	creds helpers.CredentialFlags,
	want view.Widget,
	prepare func(app.Widgets) widgets.Widget,
	after func(*helpers.Output),
) error {
	username, password, err := creds.Resolve(container.Prompter)
	if err != nil {
		return err
	}

	out := helpers.NewOutput(cmd.OutOrStdout())
	state, notice := signIn(cmd, container, username, password)
	if !notice.Empty() {
		out.Notice(notice)
		return helpers.ErrFailed
	}

	id, err := view.Require(state, want)
	if err != nil {
		return err
	}

	w := prepare(container.NewWidgets())
	sub, err := w.Prepare(id)
	if err != nil {
		return err
	}
	notice = helpers.WithSpinner(cmd.ErrOrStderr(), LabelSending, func() domain.Notice {
		return sub.Send(cmd.Context())
	})

	out.Notice(notice)
	if !notice.Success {
		return helpers.ErrFailed
	}
	if after != nil {
		after(out)
	}
	return nil
}
