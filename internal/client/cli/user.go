package cli

import (
	"fmt"

	"github.com/dmitrijs2005/adboard/internal/client/api"
	"github.com/spf13/cobra"
)

func (app *App) userCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}
	cmd.AddCommand(app.userCreateCommand(), app.userGetCommand(), app.userUpdateCommand(), app.userDeleteCommand())
	return cmd
}

func (app *App) userCreateCommand() *cobra.Command {
	var name, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if name == "" {
				if name, err = GetSimpleText(app.reader, "Name", app.out); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = app.askPassword(); err != nil {
					return err
				}
			}

			res, err := app.client.CreateUser(cmd.Context(), name, password)
			if err != nil {
				return err
			}
			return app.print(res)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "user name")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}

func (app *App) userGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res, err := app.client.GetUser(cmd.Context(), id)
			if err != nil {
				return err
			}
			return app.print(res)
		},
	}
}

func (app *App) userUpdateCommand() *cobra.Command {
	var name string
	var promptPassword bool

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change a user's name and/or password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var u api.UserUpdate
			if cmd.Flags().Changed("name") {
				u.Name = &name
			}
			if promptPassword {
				pw, err := app.askPassword()
				if err != nil {
					return err
				}
				u.Password = &pw
			}
			if u.Name == nil && u.Password == nil {
				return fmt.Errorf("nothing to update: pass --name or --password-prompt")
			}

			res, err := app.client.UpdateUser(cmd.Context(), id, u)
			if err != nil {
				return err
			}
			return app.print(res)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new user name")
	cmd.Flags().BoolVar(&promptPassword, "password-prompt", false, "ask for a new password")
	return cmd
}

func (app *App) userDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a user together with their ads",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res, err := app.client.DeleteUser(cmd.Context(), id)
			if err != nil {
				return err
			}
			return app.print(res)
		},
	}
}

func (app *App) askPassword() (string, error) {
	pw, err := getPassword(app.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pw), nil
}
