package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/smart-plant-guard/models"
)

func (c *CLI) loginCommand() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print a session token",
		Long: `Log in with email and password. Admin and researcher accounts are asked for
the verification code mailed by the server. The final token is printed to
stdout.

Examples:
  plantctl login --email root@lab.org
  export PLANTCTL_TOKEN=$(plantctl login --email root@lab.org)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				if email, err = c.prompt(cmd, "email"); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = c.prompt(cmd, "password"); err != nil {
					return err
				}
			}

			api, err := c.api()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			result, err := api.Login(ctx, models.LoginRequest{Email: email, Password: password})
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			if result.RequireMFA {
				fmt.Fprintln(cmd.ErrOrStderr(), color.CyanString("→")+" verification code sent to "+color.YellowString(result.SentTo))
				code, err := c.prompt(cmd, "code")
				if err != nil {
					return err
				}
				if result, err = api.VerifyCode(ctx, code); err != nil {
					return fmt.Errorf("verify code: %w", err)
				}
			}

			success(cmd, "logged in as %s", result.Role)
			fmt.Fprintln(cmd.OutOrStdout(), api.Token())
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when empty)")
	return cmd
}

func (c *CLI) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the profile behind the current token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := c.api()
			if err != nil {
				return err
			}
			me, err := api.Me(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, me)
		},
	}
}

func (c *CLI) versionCommand() *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show plantctl and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "plantctl %s (%s, %s)\n", c.build.BuildVersion(), c.build.BuildCommit(), c.build.BuildDate())
			if offline {
				return nil
			}

			api, err := c.api()
			if err != nil {
				return err
			}
			v, err := api.Version(cmd.Context())
			if err != nil {
				return fmt.Errorf("server version: %w", err)
			}
			fmt.Fprintf(out, "server   %s (%s, %s)\n", v.Version, v.Commit, v.Date)
			return nil
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "do not contact the server")
	return cmd
}

func (c *CLI) speciesCommand() *cobra.Command {
	var public bool

	species := &cobra.Command{Use: "species", Short: "Read species"}
	list := &cobra.Command{
		Use:   "list",
		Short: "List species",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := c.api()
			if err != nil {
				return err
			}
			items, err := api.ListSpecies(cmd.Context(), public)
			if err != nil {
				return err
			}
			return printJSON(cmd, items)
		},
	}
	list.Flags().BoolVar(&public, "public", false, "use the public view (no token needed)")

	species.AddCommand(list)
	return species
}

func (c *CLI) observationsCommand() *cobra.Command {
	var public bool

	observations := &cobra.Command{Use: "observations", Short: "Read plant observations"}
	list := &cobra.Command{
		Use:   "list",
		Short: "List observations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := c.api()
			if err != nil {
				return err
			}
			items, err := api.ListObservations(cmd.Context(), public)
			if err != nil {
				return err
			}
			return printJSON(cmd, items)
		},
	}
	list.Flags().BoolVar(&public, "public", false, "use the public view (no token needed)")

	observations.AddCommand(list)
	return observations
}

func (c *CLI) usersCommand() *cobra.Command {
	users := &cobra.Command{
		Use:   "users",
		Short: "Administer accounts (admin token required)",
	}

	var (
		query  models.UserListQuery
		active bool
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query.Active = nil
			if cmd.Flags().Changed("active") {
				query.Active = &active
			}
			api, err := c.api()
			if err != nil {
				return err
			}
			page, err := api.ListUsers(cmd.Context(), query)
			if err != nil {
				return err
			}
			return printJSON(cmd, page)
		},
	}
	list.Flags().IntVar(&query.Page, "page", 0, "page number, from 1")
	list.Flags().IntVar(&query.Size, "size", 0, "page size")
	list.Flags().StringVar(&query.Email, "email", "", "exact email to look up")
	list.Flags().StringVar(&query.Role, "role", "", "only accounts with this role")
	list.Flags().BoolVar(&active, "active", false, "only active (true) or deactivated (false) accounts")

	users.AddCommand(
		list,
		c.setActiveCommand("activate", true),
		c.setActiveCommand("deactivate", false),
		&cobra.Command{
			Use:   "role <id> <role>",
			Short: "Assign a role (admin, researcher or public)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseUserID(args[0])
				if err != nil {
					return err
				}
				api, err := c.api()
				if err != nil {
					return err
				}
				profile, err := api.SetUserRole(cmd.Context(), id, args[1])
				if err != nil {
					return err
				}
				success(cmd, "user %d is now %s", profile.ID, profile.Role)
				return printJSON(cmd, profile)
			},
		},
	)
	return users
}

func (c *CLI) setActiveCommand(use string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: "Set is_active to " + strconv.FormatBool(active),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUserID(args[0])
			if err != nil {
				return err
			}
			api, err := c.api()
			if err != nil {
				return err
			}
			profile, err := api.SetUserActive(cmd.Context(), id, active)
			if err != nil {
				return err
			}
			success(cmd, "user %d %sd", profile.ID, use)
			return printJSON(cmd, profile)
		},
	}
}

func parseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid user id %q", raw)
	}
	return id, nil
}
