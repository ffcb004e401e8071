package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/userlist/internal/config"
	"github.com/rshade/userlist/internal/listing"
	"github.com/rshade/userlist/internal/pagination"
	"github.com/rshade/userlist/internal/source"
	"github.com/rshade/userlist/internal/users"
)

// viewFlags are the listing flags shared by browse and list.
type viewFlags struct {
	search   string
	sort     string
	page     int
	endpoint string
}

// bind registers the shared flags on cmd.
func (f *viewFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.search, "search", "", "show users whose name or role contains this text")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort key: name or email (default from config)")
	cmd.Flags().IntVar(&f.page, "page", pagination.DefaultPage, "page number (1-based)")
	cmd.Flags().StringVar(&f.endpoint, "endpoint", "", "user API URL (default from config)")
}

// viewSettings is the validated configuration for one listing run.
type viewSettings struct {
	state    listing.ViewState
	pageSize int
	policy   listing.PagePolicy
	source   source.Config
}

// resolve merges flags over cfg and validates the result.
func (f *viewFlags) resolve(cfg *config.Config, pageSize int) (viewSettings, error) {
	if err := cfg.Validate(); err != nil {
		return viewSettings{}, err
	}

	sortName := cfg.View.DefaultSort
	if f.sort != "" {
		sortName = f.sort
	}
	key, err := listing.ParseSortKey(sortName)
	if err != nil {
		return viewSettings{}, invalidFlag("sort", err)
	}

	policy, err := listing.ParsePagePolicy(cfg.View.PagePolicy)
	if err != nil {
		return viewSettings{}, err
	}

	if pageSize <= 0 {
		pageSize = cfg.View.PageSize
	}
	params := pagination.Params{Page: f.page, PageSize: pageSize}
	if err = params.Validate(); err != nil {
		if errors.Is(err, pagination.ErrInvalidPageSize) {
			return viewSettings{}, invalidFlag("page-size", err)
		}
		return viewSettings{}, invalidFlag("page", err)
	}

	endpoint := cfg.Source.Endpoint
	if f.endpoint != "" {
		endpoint = f.endpoint
	}

	return viewSettings{
		state: listing.ViewState{
			SearchTerm: f.search,
			SortKey:    key,
			Page:       params.Page,
		},
		pageSize: params.PageSize,
		policy:   policy,
		source: source.Config{
			Endpoint: endpoint,
			Timeout:  cfg.Source.Timeout,
			Role:     cfg.Source.DefaultRole,
		},
	}, nil
}

// fetchUsers loads the record set, converting failures to the fixed
// viewer-facing message.
func fetchUsers(ctx context.Context, client *source.Client) ([]users.User, error) {
	records, err := client.Fetch(ctx)
	if err != nil {
		return nil, &LoadFailure{Err: err}
	}
	return records, nil
}

// LoadFailure is returned by commands whose user load failed. Its message is
// the fixed viewer-facing text; the cause is kept for errors.Is/As and logs.
type LoadFailure struct {
	Err error
}

func (e *LoadFailure) Error() string {
	return source.UserMessage
}

// Unwrap exposes the underlying load error.
func (e *LoadFailure) Unwrap() error {
	return e.Err
}

// invalidFlag wraps flag validation errors with the flag name.
func invalidFlag(name string, err error) error {
	return fmt.Errorf("invalid --%s: %w", name, err)
}
