package cli

import (
	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/session"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var profile domain.UserProfile

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save your profile (replaces any previous one)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.session.Login(cmd.Context(), profile); err != nil {
				return userError(err)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Perfil salvo para %s.\n", profile.Name)
			return err
		},
	}

	cmd.Flags().StringVar(&profile.Name, "name", "", "Your name")
	cmd.Flags().Float64Var(&profile.WeightKg, "weight", 0, "Weight in kg")
	cmd.Flags().Float64Var(&profile.HeightCm, "height", 0, "Height in cm")
	cmd.Flags().StringVar(&profile.DateOfBirth, "birth-date", "", "Date of birth (YYYY-MM-DD)")
	for _, name := range []string{"name", "weight", "height", "birth-date"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newGenerateCmd(a *app) *cobra.Command {
	var goalFlag string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new 5-day plan for a goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			goal, err := domain.ParseGoal(goalFlag)
			if err != nil {
				return userError(err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Gerando seu plano de treino...")
			plan, err := a.session.Generate(cmd.Context(), goal)
			if err != nil {
				return userError(err)
			}
			return renderPlan(cmd.OutOrStdout(), plan)
		},
	}

	cmd.Flags().StringVar(&goalFlag, "goal", "", goalHelp())
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the profile and the current plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := a.session.State()
			out := cmd.OutOrStdout()
			if state.NeedsOnboarding() {
				_, err := fmt.Fprintln(out, "Nenhum perfil salvo. Use 'fitplan login' para começar.")
				return err
			}
			p := state.Profile
			fmt.Fprintf(out, "%s, %g kg, %g cm, nascido(a) em %s\n\n", p.Name, p.WeightKg, p.HeightCm, p.DateOfBirth)
			if state.Plan == nil {
				_, err := fmt.Fprintln(out, "Nenhum plano atual. Use 'fitplan generate --goal <objetivo>'.")
				return err
			}
			return renderPlan(out, *state.Plan)
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		upload bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the current plan as PDF or spreadsheet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sink, err := a.sink(cmd.Context(), upload)
			if err != nil {
				return fmt.Errorf("open export destination: %w", err)
			}
			loc, err := a.session.Export(cmd.Context(), session.Format(strings.ToLower(format)), sink)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), loc)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", string(session.FormatPDF), "pdf or xlsx")
	cmd.Flags().BoolVar(&upload, "upload", false, "Upload to the configured S3 bucket and print a download link")

	return cmd
}

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Discard the current plan and keep the profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.session.ClearPlan(cmd.Context())
		},
	}
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Delete the stored profile and plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.session.Logout(cmd.Context())
		},
	}
}

// goalHelp lists the accepted goals with their short aliases.
func goalHelp() string {
	aliases := map[domain.Goal]string{
		domain.GoalMuscleGain: "muscle-gain",
		domain.GoalDefinition: "definition",
		domain.GoalWeightLoss: "weight-loss",
	}
	parts := make([]string, 0, len(domain.Goals))
	for _, g := range domain.Goals {
		parts = append(parts, fmt.Sprintf("%s (%q)", aliases[g], string(g)))
	}
	return "Training goal: " + strings.Join(parts, ", ")
}

// userError replaces tagged errors with their user-facing message.
func userError(err error) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return errors.New(domain.UserMessage(err, err.Error()))
	}
	return err
}
