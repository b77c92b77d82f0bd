package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ecoscope/internal/dashboard/router"
	"ecoscope/internal/dashboard/view"
	"ecoscope/internal/domain/model"
	"ecoscope/pkg/msg"
	"ecoscope/pkg/resource"
)

const clearScreen = "\033[H\033[2J"

// newRootCommand returns the command tree and a cleanup that releases
// whatever the executed command opened, whether or not it failed.
func newRootCommand() (*cobra.Command, func()) {
	var opts options
	var a *app

	root := &cobra.Command{
		Use:          "ecoscope",
		Short:        "EcoScope Wonosobo terminal dashboard",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp(cmd.Context(), opts)
			return err
		},
	}

	root.PersistentFlags().StringVarP(&opts.district, "kecamatan", "k", "Wonosobo", "kecamatan used for weather, crops and slope")
	root.PersistentFlags().StringVar(&opts.storage, "storage", resource.GetString("app.dashboard.storage"), "session storage: memory, sqlite or redis")
	root.PersistentFlags().IntVar(&opts.limit, "limit", resource.GetInt("app.market.default-limit"), "maximum price rows to fetch")
	root.PersistentFlags().StringVar(&opts.commodity, "komoditas", "", "commodity whose prices and forecast are shown")

	get := func() *app { return a }
	root.AddCommand(
		newLoginCommand(get),
		newLogoutCommand(get),
		newWhoamiCommand(get),
		newOpenCommand(get),
		newWatchCommand(get),
		newSyncCommand(get),
		newRoutesCommand(get),
	)

	cleanup := func() {
		if a != nil {
			a.close()
			a = nil
		}
	}
	return root, cleanup
}

func newLoginCommand(get func() *app) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(cmd.InOrStdin())
			if email == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Email: ")
				line, err := in.ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return err
				}
				email = strings.TrimSpace(line)
			}
			password, err := readPassword(cmd, in)
			if err != nil {
				return err
			}

			response, err := get().session.Login(cmd.Context(), model.LoginRequest{Email: email, Password: password})
			if err != nil {
				return err
			}
			if !response.Success {
				return errors.New(response.Message)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", response.Message)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	return cmd
}

// readPassword hides input on a terminal and reads a plain line otherwise.
func readPassword(cmd *cobra.Command, in *bufio.Reader) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "Password: ")
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		return string(raw), err
	}
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newLogoutCommand(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := get().session.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg.GetMessage("dashboard.logged-out"))
			return nil
		},
	}
}

func newWhoamiCommand(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := get().session
			user, ok := s.CurrentUser()
			if !ok {
				return errors.New(msg.GetMessage("dashboard.login-required"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (%s)\n", user.Name, user.Email, s.Role())
			return nil
		},
	}
}

func newOpenCommand(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open [path]",
		Short: "Render one dashboard page",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := router.Root
			if len(args) == 1 {
				path = args[0]
			}
			_, err := navigate(cmd, get(), path)
			return err
		},
	}
}

func newWatchCommand(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [path]",
		Short: "Render a page and redraw it as it re-polls",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			path := routeWeather
			if len(args) == 1 {
				path = args[0]
			}

			match, err := navigate(cmd, a, path)
			if err != nil || match.View == nil {
				return err
			}

			interval := a.deps.PollInterval
			if interval <= 0 {
				interval = time.Minute
			}
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			out := cmd.OutOrStdout()
			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case <-ticker.C:
					if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
						fmt.Fprint(out, clearScreen)
					}
					if err := match.View.Render(out); err != nil {
						return err
					}
				}
			}
		},
	}
}

func newSyncCommand(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run the market price sync, then show the refreshed table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			match, err := a.router.Navigate(cmd.Context(), routePriceManagement)
			manager, ok := match.View.(*view.PriceManagementView)
			if !ok {
				return errors.New("price management view is not registered")
			}
			if err == nil {
				err = manager.Sync(cmd.Context())
			}
			if renderErr := manager.Render(cmd.OutOrStdout()); renderErr != nil {
				return renderErr
			}
			return err
		},
	}
}

func newRoutesCommand(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the dashboard pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range get().router.Paths() {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

// navigate mounts and renders the routed view. A guarded view still
// renders its own message; the guard error is then reported.
func navigate(cmd *cobra.Command, a *app, path string) (router.Match, error) {
	match, err := a.router.Navigate(cmd.Context(), path)
	out := cmd.OutOrStdout()
	if match.Redirected {
		fmt.Fprintln(cmd.ErrOrStderr(), msg.GetMessage("dashboard.not-found", path))
	}
	if match.View == nil {
		return match, err
	}

	fmt.Fprintf(out, "== %s ==\n", match.View.Title())
	if renderErr := match.View.Render(out); renderErr != nil {
		return match, renderErr
	}
	return match, err
}
