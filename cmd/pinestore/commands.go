package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/naveenspark/pinestore/internal/browser"
	"github.com/naveenspark/pinestore/internal/buildinfo"
	"github.com/naveenspark/pinestore/internal/tui"
	"github.com/naveenspark/pinestore/pkg/client"
)

// Side effects, swapped out in tests.
var (
	copyToClipboard = clipboard.WriteAll
	openBrowser     = browser.Open
	runBrowser      = tui.Run
)

// textWidth is the wrap width for text output.
const textWidth = 80

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid project id %q", s)
	}
	return id, nil
}

func projectCmd(a *app) *cobra.Command {
	var copyInstall, open bool

	c := &cobra.Command{
		Use:   "project <id>",
		Short: "Show a project by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.raw {
				if copyInstall || open {
					return errors.New("--raw cannot be combined with --copy-install or --open")
				}
				return a.printRaw(cmd, client.OpFetchProject, args...)
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := a.client.FetchProject(cmd.Context(), id)
			if err != nil {
				return err
			}

			if copyInstall {
				if p.InstallCommand == "" {
					return errors.New("project has no install command")
				}
				if err := copyToClipboard(p.InstallCommand); err != nil {
					return fmt.Errorf("copy install command: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "copied:", p.InstallCommand)
			}
			if open {
				if p.Repository == "" {
					return errors.New("project has no repository")
				}
				if err := openBrowser(p.Repository); err != nil {
					return fmt.Errorf("open repository: %w", err)
				}
			}

			return a.print(cmd, p, func() string { return tui.RenderProject(*p, textWidth) })
		},
	}
	c.Flags().BoolVar(&copyInstall, "copy-install", false, "copy the install command to the clipboard")
	c.Flags().BoolVar(&open, "open", false, "open the repository in a browser")
	return c
}

func projectByNameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "project-by-name <name>",
		Short: "Show a project by its exact name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.raw {
				return a.printRaw(cmd, client.OpFetchProjectByName, args...)
			}
			p, err := a.client.FetchProjectByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, p, func() string { return tui.RenderProject(*p, textWidth) })
		},
	}
}

func projectsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List every project in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.raw {
				return a.printRaw(cmd, client.OpFetchProjects)
			}
			ps, err := a.client.FetchProjects(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(cmd, ps, func() string { return tui.RenderProjectList(ps, textWidth) })
		},
	}
}

func searchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query...>",
		Short: "Search projects by free text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if a.raw {
				return a.printRaw(cmd, client.OpSearchProjects, query)
			}
			ps, err := a.client.SearchProjects(cmd.Context(), query)
			if err != nil {
				return err
			}
			return a.print(cmd, ps, func() string { return tui.RenderProjectList(ps, textWidth) })
		},
	}
}

func commentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "comments <projectID>",
		Short: "Show a project's comments as a reply tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.raw {
				return a.printRaw(cmd, client.OpFetchComments, args...)
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cs, err := a.client.FetchComments(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.print(cmd, cs, func() string { return tui.RenderComments(cs, textWidth) })
		},
	}
}

func changelogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "changelog <projectID>",
		Short: "Show a project's latest changelog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.raw {
				return a.printRaw(cmd, client.OpFetchChangelog, args...)
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cl, err := a.client.FetchChangelog(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.print(cmd, cl, func() string { return tui.RenderChangelog(*cl, textWidth) })
		},
	}
}

func changelogsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "changelogs <projectID>",
		Short: "Show every changelog entry of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.raw {
				return a.printRaw(cmd, client.OpFetchChangelogs, args...)
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cs, err := a.client.FetchChangelogs(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.print(cmd, cs, func() string { return tui.RenderChangelogs(cs, textWidth) })
		},
	}
}

func userCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "user <discordID>",
		Short: "Show a user profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.raw {
				return a.printRaw(cmd, client.OpFetchUser, args...)
			}
			u, err := a.client.FetchUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, u, func() string { return tui.RenderUser(*u, textWidth) })
		},
	}
}

func userProjectsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "user-projects <discordID>",
		Short: "List the projects owned by a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.raw {
				return a.printRaw(cmd, client.OpFetchUserProjects, args...)
			}
			ps, err := a.client.FetchUserProjects(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, ps, func() string { return tui.RenderProjectList(ps, textWidth) })
		},
	}
}

type routeRow struct {
	Operation string `json:"operation" yaml:"operation"`
	Method    string `json:"method" yaml:"method"`
	Template  string `json:"template" yaml:"template"`
}

func routesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the catalog endpoints this client calls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			routes := client.Routes()
			rows := make([]routeRow, 0, len(routes))
			for _, r := range routes {
				rows = append(rows, routeRow{Operation: r.Op.String(), Method: r.Method, Template: r.Template})
			}
			return a.print(cmd, rows, func() string {
				var b strings.Builder
				for _, r := range rows {
					fmt.Fprintf(&b, "%-20s %-4s %s\n", r.Operation, r.Method, r.Template)
				}
				return b.String()
			})
		},
	}
}

func browseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive catalog browser",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBrowser(a.client, buildinfo.Version)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// No config or client needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			return nil
		},
	}
}
