package cli

import (
	"fmt"

	"github.com/dmitrijs2005/adboard/internal/client/api"
	"github.com/spf13/cobra"
)

func (app *App) adsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ads",
		Short: "Manage ads",
	}
	cmd.AddCommand(app.adsCreateCommand(), app.adsGetCommand(), app.adsUpdateCommand(), app.adsDeleteCommand(), app.adsListCommand())
	return cmd
}

func (app *App) adsCreateCommand() *cobra.Command {
	var owner int64
	var title, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish an ad for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if owner < 1 {
				return fmt.Errorf("--owner must be a positive user id")
			}

			var err error
			if title == "" {
				if title, err = GetSimpleText(app.reader, "Title", app.out); err != nil {
					return err
				}
			}
			if description == "" {
				if description, err = GetMultiline(app.reader, "Description", app.out); err != nil {
					return err
				}
			}

			res, err := app.client.CreateAd(cmd.Context(), owner, title, description)
			if err != nil {
				return err
			}
			return app.print(res)
		},
	}

	cmd.Flags().Int64Var(&owner, "owner", 0, "owner user id")
	cmd.Flags().StringVar(&title, "title", "", "ad title (prompted when omitted)")
	cmd.Flags().StringVar(&description, "description", "", "ad description (prompted when omitted)")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}

func (app *App) adsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show an ad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res, err := app.client.GetAd(cmd.Context(), id)
			if err != nil {
				return err
			}
			return app.print(res)
		},
	}
}

func (app *App) adsUpdateCommand() *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change an ad's title and/or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var u api.AdUpdate
			if cmd.Flags().Changed("title") {
				u.Title = &title
			}
			if cmd.Flags().Changed("description") {
				u.Description = &description
			}
			if u.Title == nil && u.Description == nil {
				return fmt.Errorf("nothing to update: pass --title or --description")
			}

			res, err := app.client.UpdateAd(cmd.Context(), id, u)
			if err != nil {
				return err
			}
			return app.print(res)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	return cmd
}

func (app *App) adsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an ad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res, err := app.client.DeleteAd(cmd.Context(), id)
			if err != nil {
				return err
			}
			return app.print(res)
		},
	}
}

func (app *App) adsListCommand() *cobra.Command {
	var owner int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the ads of a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if owner < 1 {
				return fmt.Errorf("--owner must be a positive user id")
			}
			res, err := app.client.ListAds(cmd.Context(), owner)
			if err != nil {
				return err
			}
			return app.print(res)
		},
	}

	cmd.Flags().Int64Var(&owner, "owner", 0, "owner user id")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}
