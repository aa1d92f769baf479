package cli

import (
	"fmt"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/exceptions"
	"mediconnect-portal/internal/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewRootCommand(app *App) *cobra.Command {
	var asJSON bool

	rootCmd := &cobra.Command{
		Use:           "mediconnect",
		Short:         "Hospital portal from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print raw JSON views")

	rootCmd.AddCommand(
		loginCmd(app),
		logoutCmd(app),
		datesCmd(app, &asJSON),
		slotsCmd(app, &asJSON),
		bookCmd(app, &asJSON),
		boardCmd(app, &asJSON),
		statusCmd(app, constvars.AppointmentActionApprove, &asJSON),
		statusCmd(app, constvars.AppointmentActionReject, &asJSON),
	)
	return rootCmd
}

func loginCmd(app *App) *cobra.Command {
	request := new(requests.Login)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			utils.SanitizeLoginRequest(request)
			err := utils.ValidateStruct(request)
			if err != nil {
				return exceptions.ErrInputValidation(err)
			}

			ctx, cancel := app.newContext(cmd.Context())
			defer cancel()

			response, err := app.AuthUsecase.Login(ctx, request)
			if err != nil {
				return err
			}
			err = app.Sessions.Save(response.SessionID)
			if err != nil {
				return err
			}

			app.Log.Debug("cli login succeeded", zap.String(constvars.LoggingRoleKey, response.Role))
			fmt.Fprintf(app.Out, "Logged in as %s (%s), dashboard %s\n", response.Email, response.Role, response.Dashboard)
			return nil
		},
	}
	cmd.Flags().StringVar(&request.Email, "email", "", "account email")
	cmd.Flags().StringVar(&request.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID, err := app.Sessions.Load()
			if err != nil {
				return err
			}
			if sessionID != "" {
				ctx, cancel := app.newContext(cmd.Context())
				defer cancel()

				err = app.AuthUsecase.Logout(ctx, sessionID)
				if err != nil {
					app.Log.Warn("cli logout could not delete remote session", zap.Error(err))
				}
			}

			err = app.Sessions.Clear()
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, constvars.ResponseLoggedOut)
			return nil
		},
	}
}

func datesCmd(app *App, asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "dates DOCTOR_ID",
		Short: "List bookable dates for a doctor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.newContext(cmd.Context())
			defer cancel()

			session, err := app.session(ctx)
			if err != nil {
				return err
			}
			view, err := app.SlotUsecase.GetDoctorScheduleView(ctx, session, args[0])
			if err != nil {
				return err
			}
			if *asJSON {
				return printJSON(app.Out, view)
			}
			return printDates(app.Out, view)
		},
	}
}

func slotsCmd(app *App, asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "slots DOCTOR_ID DATE",
		Short: "List a doctor's slots on a date (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.newContext(cmd.Context())
			defer cancel()

			session, err := app.session(ctx)
			if err != nil {
				return err
			}
			view, err := app.SlotUsecase.GetSlotsView(ctx, session, args[0], args[1])
			if err != nil {
				return err
			}
			if *asJSON {
				return printJSON(app.Out, view)
			}
			return printSlots(app.Out, view.Slots)
		},
	}
}

func bookCmd(app *App, asJSON *bool) *cobra.Command {
	request := new(requests.BookSlot)

	cmd := &cobra.Command{
		Use:   "book DOCTOR_ID DATE",
		Short: "Book the slot starting at --start for --purpose",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.newContext(cmd.Context())
			defer cancel()

			session, err := app.session(ctx)
			if err != nil {
				return err
			}
			result, err := app.SlotUsecase.BookSlot(ctx, session, args[0], args[1], request)
			if err != nil {
				return err
			}
			if *asJSON {
				return printJSON(app.Out, result)
			}
			fmt.Fprintf(app.Out, "%s %s - %s (%s)\n", constvars.ResponseAppointmentBooked, result.StartDateTime, result.EndDateTime, result.Purpose)
			return printSlots(app.Out, result.Slots)
		},
	}
	cmd.Flags().StringVar(&request.StartDateTime, "start", "", "slot start_datetime as listed by slots")
	cmd.Flags().StringVar(&request.Purpose, "purpose", constvars.PurposeConsultation, "Consultation, Follow-up, Minor Procedure or Major Procedure")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func boardCmd(app *App, asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show the receptionist appointment board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.newContext(cmd.Context())
			defer cancel()

			session, err := app.session(ctx)
			if err != nil {
				return err
			}
			if !session.HasRole(constvars.RoleReceptionist) {
				return exceptions.ErrRoleNotAllowed(nil, session.Role)
			}
			board, err := app.AppointmentUsecase.GetReceptionistBoard(ctx, session)
			if err != nil {
				return err
			}
			if *asJSON {
				return printJSON(app.Out, board.View())
			}
			return printBoard(app.Out, board.View())
		},
	}
}

func statusCmd(app *App, action string, asJSON *bool) *cobra.Command {
	message := constvars.ResponseAppointmentApproved
	if action == constvars.AppointmentActionReject {
		message = constvars.ResponseAppointmentRejected
	}

	return &cobra.Command{
		Use:   action + " APPOINTMENT_ID",
		Short: fmt.Sprintf("%s a pending appointment", action),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.newContext(cmd.Context())
			defer cancel()

			session, err := app.session(ctx)
			if err != nil {
				return err
			}
			if !session.HasRole(constvars.RoleReceptionist) {
				return exceptions.ErrRoleNotAllowed(nil, session.Role)
			}
			result, err := app.AppointmentUsecase.UpdateStatus(ctx, session, args[0], action)
			if err != nil {
				return err
			}
			if *asJSON {
				return printJSON(app.Out, result)
			}
			fmt.Fprintln(app.Out, message)
			return printBoard(app.Out, result.Board)
		},
	}
}
