package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/adboard/internal/client/api"
	"github.com/dmitrijs2005/adboard/internal/client/config"
	"github.com/spf13/cobra"
)

// apiClient is the part of api.Client the commands use.
type apiClient interface {
	Ping(ctx context.Context) error
	CreateUser(ctx context.Context, name, password string) (*api.UserCreated, error)
	GetUser(ctx context.Context, id int64) (*api.User, error)
	UpdateUser(ctx context.Context, id int64, u api.UserUpdate) (*api.User, error)
	DeleteUser(ctx context.Context, id int64) (*api.Deleted, error)
	CreateAd(ctx context.Context, ownerID int64, title, description string) (*api.AdCreated, error)
	GetAd(ctx context.Context, id int64) (*api.Ad, error)
	UpdateAd(ctx context.Context, id int64, u api.AdUpdate) (*api.AdChange, error)
	DeleteAd(ctx context.Context, id int64) (*api.Deleted, error)
	ListAds(ctx context.Context, ownerID int64) ([]api.AdSummary, error)
}

var newAPIClient = func(c *config.Config) apiClient {
	return api.New(c.ServerAddr, c.Timeout)
}

type App struct {
	config *config.Config
	client apiClient
	reader *bufio.Reader
	out    io.Writer
}

// NewRootCommand builds the command tree. cfg holds defaults and
// environment values; --config and the flags are applied on execution.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	app := &App{config: cfg}
	var configPath string

	root := &cobra.Command{
		Use:          "adboard",
		Short:        "Command-line client for the adboard API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				if err := app.applyConfigFile(cmd, configPath); err != nil {
					return err
				}
			}
			app.client = newAPIClient(app.config)
			app.reader = bufio.NewReader(cmd.InOrStdin())
			app.out = cmd.OutOrStdout()
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfg.ServerAddr, "addr", cfg.ServerAddr, "base URL of the adboard API")
	pf.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "timeout of a single API call")
	pf.StringVarP(&configPath, "config", "c", "", "JSON config file")

	root.AddCommand(app.pingCommand(), app.userCommand(), app.adsCommand())

	return root
}

// applyConfigFile loads the JSON file without overriding flags given on
// the command line.
func (app *App) applyConfigFile(cmd *cobra.Command, path string) error {
	addr, timeout := app.config.ServerAddr, app.config.Timeout

	if err := config.LoadJSON(app.config, path); err != nil {
		return err
	}

	if cmd.Flags().Changed("addr") {
		app.config.ServerAddr = addr
	}
	if cmd.Flags().Changed("timeout") {
		app.config.Timeout = timeout
	}
	return nil
}

func (app *App) pingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the server is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.client.Ping(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(app.out, "OK")
			return err
		},
	}
}

func (app *App) print(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(app.out, string(b))
	return err
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", s)
	}
	return id, nil
}
