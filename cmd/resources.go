package cmd

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/s0up4200/twit/filter"
	"github.com/s0up4200/twit/twit"
)

// Command flags
var (
	queryParams map[string]string
	limit       int
	jsonOutput  bool
	whereExpr   string
)

// fetchOptions controls how a resource command fetches and prints
type fetchOptions struct {
	params url.Values
	limit  int
	json   bool
	where  string
}

// extraFields names the field printed next to an item's label instead of its id
var extraFields = map[twit.Resource]string{
	twit.ResourceStreams: "streamType",
}

var showsCmd = newResourceCmd(twit.ResourceShows, true,
	"List shows, or show one show's details",
	`List all TWiT shows, or fetch a single show when an ID is given.

Examples:
  twit shows
  twit shows 1635
  twit shows --where 'contains(label, "week")'`)

var episodesCmd = newResourceCmd(twit.ResourceEpisodes, true,
	"List episodes, or show one episode",
	`List TWiT episodes, or fetch a single episode when an ID is given.

Examples:
  twit episodes --param 'filter[shows]=1635' --limit 5
  twit episodes 12345 --json`)

var streamsCmd = newResourceCmd(twit.ResourceStreams, false,
	"List live streams",
	`List the TWiT live streams and their stream type.`)

var peopleCmd = newResourceCmd(twit.ResourcePeople, false,
	"List people",
	`List hosts and guests known to the TWiT API.`)

func init() {
	rootCmd.AddCommand(showsCmd)
	rootCmd.AddCommand(episodesCmd)
	rootCmd.AddCommand(streamsCmd)
	rootCmd.AddCommand(peopleCmd)
}

// newResourceCmd builds a command for one resource type. withID allows an
// optional ID argument that fetches a single item.
func newResourceCmd(resource twit.Resource, withID bool, short, long string) *cobra.Command {
	use := string(resource)
	var validArgs cobra.PositionalArgs = cobra.NoArgs
	if withID {
		use += " [id]"
		validArgs = cobra.MaximumNArgs(1)
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) == 1 {
				id = args[0]
			}

			params := url.Values{}
			for k, v := range queryParams {
				params.Set(k, v)
			}

			return runResource(cmd.Context(), cmd.OutOrStdout(), twitClient, resource, id, fetchOptions{
				params: params,
				limit:  limit,
				json:   jsonOutput,
				where:  whereExpr,
			})
		},
	}

	cmd.Flags().StringToStringVarP(&queryParams, "param", "P", nil, "query parameter as key=value (repeatable)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of items to print (0 prints all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the raw JSON payload")
	cmd.Flags().StringVarP(&whereExpr, "where", "w", "", "only print items matching this expression")

	return cmd
}

// runResource fetches resource (or a single item of it when id is set) and
// prints the result to w.
func runResource(ctx context.Context, w io.Writer, api twit.API, resource twit.Resource, id string, opts fetchOptions) error {
	var itemFilter *filter.ItemFilter
	if opts.where != "" {
		var err error
		itemFilter, err = filter.Compile(opts.where)
		if err != nil {
			return fmt.Errorf("invalid --where expression: %w", err)
		}
	}

	formatter := twit.NewConsoleFormatter()

	payload, err := fetch(ctx, api, resource, id, opts.params)
	if err != nil {
		fmt.Fprint(w, formatter.FormatError(err))
		if id != "" {
			return fmt.Errorf("failed to get %s %s: %w", resource, id, err)
		}
		return fmt.Errorf("failed to get %s: %w", resource, err)
	}

	if opts.json {
		out, err := payload.JSON()
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		fmt.Fprintln(w, string(out))
		return nil
	}

	key := string(resource)

	if id != "" {
		obj, ok := payload.Object(key)
		if !ok {
			// Some endpoints wrap the single item in a one-element array
			items := payload.Collection(key)
			if len(items) == 0 {
				return fmt.Errorf("%s %s: no item in response", resource, id)
			}
			obj = items[0]
		}

		if itemFilter != nil {
			matched, err := itemFilter.Match(obj)
			if err != nil {
				return err
			}
			if !matched {
				fmt.Fprintf(w, "%s %s does not match %q\n", resource, id, itemFilter.String())
				return nil
			}
		}

		if resource == twit.ResourceShows {
			var show twit.Show
			if err := obj.Decode(&show); err != nil {
				return fmt.Errorf("failed to read show %s: %w", id, err)
			}
			fmt.Fprint(w, formatter.FormatShowDetail(show))
			return nil
		}

		fmt.Fprint(w, formatter.FormatItems(resource, []twit.Payload{obj}, 0, extraFields[resource]))
		return nil
	}

	all := payload.Collection(key)
	items := all
	if itemFilter != nil {
		items, err = itemFilter.Apply(all)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d of %d %s match %q\n", len(items), len(all), resource, itemFilter.String())
	} else {
		fmt.Fprintln(w, formatter.FormatCount(resource, payload))
	}

	fmt.Fprint(w, formatter.FormatItems(resource, items, opts.limit, extraFields[resource]))
	return nil
}

// fetch calls the client operation for resource
func fetch(ctx context.Context, api twit.API, resource twit.Resource, id string, params url.Values) (twit.Payload, error) {
	switch resource {
	case twit.ResourceShows:
		if id != "" {
			return api.GetShow(ctx, id, params)
		}
		return api.ListShows(ctx, params)
	case twit.ResourceEpisodes:
		if id != "" {
			return api.GetEpisode(ctx, id, params)
		}
		return api.ListEpisodes(ctx, params)
	case twit.ResourceStreams:
		return api.ListStreams(ctx, params)
	case twit.ResourcePeople:
		return api.ListPeople(ctx, params)
	default:
		return twit.Payload{}, fmt.Errorf("unknown resource: %s", resource)
	}
}
