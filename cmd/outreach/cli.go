package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ikhairy/outreach/internal/config"
	"github.com/ikhairy/outreach/internal/draft"
	"github.com/ikhairy/outreach/internal/errors"
	"github.com/ikhairy/outreach/internal/ops"
	"github.com/ikhairy/outreach/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, cfg *config.Config, drafts *draft.Service, baseDir string) *cli.App {
	app := &cli.App{
		Name:    "outreach",
		Usage:   "Client request tracking and proposal drafting",
		Version: Version,
		Commands: []*cli.Command{
			addCmd(db, cfg),
			showCmd(db),
			listCmd(db),
			updateCmd(db, cfg),
			finalizeCmd(db),
			generateCmd(db, drafts),
			refineCmd(drafts),
			exportCmd(db, baseDir),
			serveCmd(db, cfg, drafts),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// addCmd creates the add command.
func addCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Record a new client request",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Client name", Required: true},
			&cli.StringFlag{Name: "service", Aliases: []string{"s"}, Usage: "Requested service", Required: true},
			&cli.StringFlag{Name: "headline", Usage: "Client headline (optional)"},
			&cli.StringFlag{Name: "details", Aliases: []string{"d"}, Usage: "Project details", Required: true},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Create(c.Context, db, cfg, ops.CreateInput{
				ClientName:     c.String("name"),
				ServiceNeeded:  c.String("service"),
				ClientHeadline: c.String("headline"),
				ProjectDetails: c.String("details"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// showCmd creates the show command.
func showCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a request by ID",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			id, err := requireID(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Fetch(c.Context, db, ops.FetchInput{ID: id})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// listCmd creates the list command.
func listCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List requests in submission order",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "status", Usage: "Filter by status (Pending, Contacted, Follow-up, Closed)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.List(c.Context, db, ops.ListInput{
				Status: c.String("status"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// updateCmd creates the update command.
func updateCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update fields of an existing request",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "New client name"},
			&cli.StringFlag{Name: "service", Aliases: []string{"s"}, Usage: "New service"},
			&cli.StringFlag{Name: "headline", Usage: "New client headline"},
			&cli.StringFlag{Name: "details", Aliases: []string{"d"}, Usage: "New project details"},
			&cli.StringFlag{Name: "status", Usage: "New status"},
			&cli.StringFlag{Name: "proposal", Usage: "Replace the stored proposal text"},
		},
		Action: func(c *cli.Context) error {
			id, err := requireID(c)
			if err != nil {
				return outputError(err)
			}

			input := ops.UpdateInput{ID: id}
			if c.IsSet("name") {
				input.ClientName = flagPtr(c, "name")
			}
			if c.IsSet("service") {
				input.ServiceNeeded = flagPtr(c, "service")
			}
			if c.IsSet("headline") {
				input.ClientHeadline = flagPtr(c, "headline")
			}
			if c.IsSet("details") {
				input.ProjectDetails = flagPtr(c, "details")
			}
			if c.IsSet("status") {
				input.Status = flagPtr(c, "status")
			}
			if c.IsSet("proposal") {
				input.SubmittedProposal = flagPtr(c, "proposal")
			}

			output, err := ops.Update(c.Context, db, cfg, input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// finalizeCmd creates the finalize command.
func finalizeCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "finalize",
		Usage:     "Store the sent proposal and mark the request Contacted (reads proposal from stdin)",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "status", Usage: "Status to set instead of Contacted (Follow-up or Closed)"},
		},
		Action: func(c *cli.Context) error {
			id, err := requireID(c)
			if err != nil {
				return outputError(err)
			}

			if !stdinHasData() {
				return outputError(errors.NewInvalidRequest("proposal text must be piped via stdin"))
			}
			text, err := readStdin()
			if err != nil {
				return outputError(errors.NewInternal(err))
			}

			output, err := ops.Finalize(c.Context, db, ops.FinalizeInput{
				ID:           id,
				ProposalText: text,
				Status:       c.String("status"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// generateCmd creates the generate command.
func generateCmd(db *sql.DB, drafts *draft.Service) *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Usage:     "Generate a proposal draft for a request",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			id, err := requireID(c)
			if err != nil {
				return outputError(err)
			}

			fetched, err := ops.Fetch(c.Context, db, ops.FetchInput{ID: id})
			if err != nil {
				return outputError(err)
			}

			text, err := drafts.Generate(c.Context, &fetched.Request)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(map[string]string{"draft": text})
		},
	}
}

// refineCmd creates the refine command.
func refineCmd(drafts *draft.Service) *cli.Command {
	return &cli.Command{
		Name:  "refine",
		Usage: "Refine a proposal draft (reads draft from stdin)",
		Action: func(c *cli.Context) error {
			if !stdinHasData() {
				return outputError(errors.NewInvalidRequest("draft text must be piped via stdin"))
			}
			text, err := readStdin()
			if err != nil {
				return outputError(errors.NewInternal(err))
			}
			if text == "" {
				return outputError(errors.NewInvalidRequest("draft text is required"))
			}

			refined, err := drafts.Refine(c.Context, text)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(map[string]string{"draft": refined})
		},
	}
}

// exportCmd creates the export command.
func exportCmd(db *sql.DB, baseDir string) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export requests to a CSV file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Destination path (defaults to exports dir)"},
			&cli.StringFlag{Name: "status", Usage: "Only export requests with this status"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Export(c.Context, db, baseDir, ops.ExportInput{
				Path:   c.String("path"),
				Status: c.String("status"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(db *sql.DB, cfg *config.Config, drafts *draft.Service) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Usage: "Bind address (defaults to config)"},
			&cli.IntFlag{Name: "port", Usage: "Port (defaults to config)"},
		},
		Action: func(c *cli.Context) error {
			bind := cfg.WebBind
			if c.IsSet("bind") {
				bind = c.String("bind")
			}
			port := cfg.WebPort
			if c.IsSet("port") {
				port = c.Int("port")
			}

			srv := web.NewServer(db, cfg, drafts, Version, bind, port)
			return web.Run(srv)
		},
	}
}

// Helper functions

// requireID parses the positional ID argument.
func requireID(c *cli.Context) (int64, error) {
	if c.NArg() < 1 {
		return 0, errors.NewInvalidRequest("request ID argument is required")
	}
	id, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidRequest("request ID must be a positive integer")
	}
	return id, nil
}

// flagPtr returns a pointer to a string flag value.
func flagPtr(c *cli.Context, name string) *string {
	v := c.String(name)
	return &v
}

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if oErr, ok := errors.AsOutreach(err); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", oErr.Code, oErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
