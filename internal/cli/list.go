package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/rshade/userlist/internal/config"
	"github.com/rshade/userlist/internal/listing"
	"github.com/rshade/userlist/internal/pagination"
	"github.com/rshade/userlist/internal/source"
	"github.com/rshade/userlist/internal/users"
)

// tabPadding is the column gap of tabular output.
const tabPadding = 2

// Output formats of the list command.
const (
	outputTable  = "table"
	outputJSON   = "json"
	outputNDJSON = "ndjson"
	outputYAML   = "yaml"
)

// listPage is the structured form of one derived page.
type listPage struct {
	Search     string          `json:"search"     yaml:"search"`
	Sort       string          `json:"sort"       yaml:"sort"`
	Users      []users.User    `json:"users"      yaml:"users"`
	Pagination pagination.Meta `json:"pagination" yaml:"pagination"`
}

// NewListCmd creates the list command: fetch, derive one page and print it.
func NewListCmd() *cobra.Command {
	var (
		flags    viewFlags
		pageSize int
		output   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of users",
		Long: `Fetches the user list, filters it by --search (name or role, case-insensitive),
sorts it by --sort and prints page --page.

A page past the end of the filtered list prints no users.`,
		Example: `  # First page, sorted by name
  userlist list

  # Users whose name or role contains "an", page 2 of 3 per page
  userlist list --search an --page 2 --page-size 3

  # Sorted by email as NDJSON
  userlist list --sort email --output ndjson`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, &flags, pageSize, output)
		},
	}

	flags.bind(cmd)
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "users per page (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table, json, ndjson or yaml")

	return cmd
}

func runList(cmd *cobra.Command, flags *viewFlags, pageSize int, output string) error {
	output = strings.ToLower(output)
	switch output {
	case outputTable, outputJSON, outputNDJSON, outputYAML:
	default:
		return invalidFlag("output", fmt.Errorf("unknown format %q", output))
	}

	settings, err := flags.resolve(config.GetGlobalConfig(), pageSize)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	records, err := fetchUsers(ctx, source.NewClient(settings.source))
	if err != nil {
		logger.Error().Ctx(ctx).Err(err).Msg("list failed")
		return err
	}

	view := listing.Derive(records, settings.state, settings.pageSize)
	logger.Debug().Ctx(ctx).
		Int("records", len(records)).
		Int("matched", view.FilteredCount).
		Int("page", view.Page).
		Msg("derived page")

	page := listPage{
		Search:     settings.state.SearchTerm,
		Sort:       string(settings.state.SortKey),
		Users:      view.Items,
		Pagination: view.Meta(),
	}

	w := cmd.OutOrStdout()
	switch output {
	case outputJSON:
		return renderListJSON(w, page)
	case outputNDJSON:
		return renderListNDJSON(w, page.Users)
	case outputYAML:
		return renderListYAML(w, page)
	default:
		return renderListTable(w, page)
	}
}

// renderListTable renders a page as an aligned table with a summary line.
func renderListTable(w io.Writer, page listPage) error {
	meta := page.Pagination
	p := message.NewPrinter(language.English)

	if len(page.Users) == 0 {
		if meta.TotalItems == 0 {
			fmt.Fprintln(w, "No users found")
		} else {
			p.Fprintf(w, "No users on page %d (%d pages)\n", meta.CurrentPage, meta.TotalPages)
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "ID\tName\tEmail\tRole")
	fmt.Fprintln(tw, "--\t----\t-----\t----")
	for _, u := range page.Users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	p.Fprintf(w, "Showing %d-%d of %d users (page %d of %d)\n",
		meta.FirstItem, meta.LastItem, meta.TotalItems, meta.CurrentPage, meta.TotalPages)
	return nil
}

// renderListJSON renders a page as indented JSON.
func renderListJSON(w io.Writer, page listPage) error {
	if page.Users == nil {
		page.Users = []users.User{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(page)
}

// renderListNDJSON renders one user per line.
func renderListNDJSON(w io.Writer, records []users.User) error {
	enc := json.NewEncoder(w)
	for _, u := range records {
		if err := enc.Encode(u); err != nil {
			return err
		}
	}
	return nil
}

// renderListYAML renders a page as YAML.
func renderListYAML(w io.Writer, page listPage) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2) //nolint:mnd // Two-space YAML indent.
	if err := enc.Encode(page); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
