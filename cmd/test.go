package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/s0up4200/twit/twit"
)

const (
	previewShows   = 3
	previewStreams = 2
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to the TWiT API",
	Long: `Test the connection to the TWiT API and display basic information.

Fetches the show list, the first show's details and the live streams.
A failing step is reported and the remaining steps still run.`,
	RunE: runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	return runConnectionTest(cmd.Context(), cmd.OutOrStdout(), twitClient, twitClient.BaseURL())
}

// runConnectionTest runs the demo flow against api and writes the summary
// to w. It returns the joined errors of the steps that failed.
func runConnectionTest(ctx context.Context, w io.Writer, api twit.API, baseURL string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := twit.NewConsoleFormatter()
	var errs []error

	fmt.Fprintln(w, "Testing connection to TWiT API...")
	fmt.Fprintf(w, "Endpoint: %s/%s\n", baseURL, twit.ResourceShows)

	shows, err := api.ListShows(ctx, nil)
	if err != nil {
		fmt.Fprint(w, formatter.FormatError(err))
		errs = append(errs, fmt.Errorf("failed to get shows: %w", err))
	} else {
		fmt.Fprintln(w, "✓ Connection successful!")
		fmt.Fprintln(w, formatter.FormatCount(twit.ResourceShows, shows))

		items := shows.Collection(string(twit.ResourceShows))
		if len(items) > 0 {
			fmt.Fprint(w, formatter.FormatItems(twit.ResourceShows, items, previewShows, ""))

			if err := printShowDetail(ctx, w, api, formatter, items[0].ID()); err != nil {
				errs = append(errs, err)
			}
		}
	}

	fmt.Fprintln(w, "\nGetting live streams information...")
	streams, err := api.ListStreams(ctx, nil)
	if err != nil {
		fmt.Fprint(w, formatter.FormatError(err))
		errs = append(errs, fmt.Errorf("failed to get streams: %w", err))
	} else {
		fmt.Fprintln(w, formatter.FormatCount(twit.ResourceStreams, streams))
		items := streams.Collection(string(twit.ResourceStreams))
		if len(items) > 0 {
			fmt.Fprint(w, formatter.FormatItems(twit.ResourceStreams, items, previewStreams, "streamType"))
		}
	}

	return errors.Join(errs...)
}

// printShowDetail fetches a single show. The API returns it as an object
// under "shows" rather than an array.
func printShowDetail(ctx context.Context, w io.Writer, api twit.API, formatter *twit.ConsoleFormatter, id string) error {
	fmt.Fprintf(w, "\nGetting details for show ID: %s\n", id)

	detail, err := api.GetShow(ctx, id, nil)
	if err != nil {
		fmt.Fprint(w, formatter.FormatError(err))
		return fmt.Errorf("failed to get show %s: %w", id, err)
	}

	obj, ok := detail.Object(string(twit.ResourceShows))
	if !ok {
		fmt.Fprintln(w, "Show details not present in response")
		return nil
	}

	var show twit.Show
	if err := obj.Decode(&show); err != nil {
		err = fmt.Errorf("failed to read show %s: %w", id, err)
		fmt.Fprint(w, formatter.FormatError(err))
		return err
	}

	fmt.Fprint(w, formatter.FormatShowDetail(show))
	return nil
}
