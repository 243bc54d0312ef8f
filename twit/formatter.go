package twit

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// descriptionPreview is the number of characters shown of a description
const descriptionPreview = 100

// ConsoleFormatter provides console output formatting for API payloads
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatCount formats the "Found N <resource>" line. The payload's count is
// preferred over the number of items actually returned.
func (f *ConsoleFormatter) FormatCount(resource Resource, payload Payload) string {
	count, ok := payload.Count()
	if !ok {
		count = int64(len(payload.Collection(string(resource))))
	}
	return fmt.Sprintf("Found %d %s", count, resource)
}

// FormatItems formats up to limit items as "label (id)" lines. A limit of
// zero or less prints every item. extra names an additional field shown in
// place of the id, e.g. "streamType" for streams.
func (f *ConsoleFormatter) FormatItems(resource Resource, items []Payload, limit int, extra string) string {
	if len(items) == 0 {
		return fmt.Sprintf("No %s found\n", resource)
	}

	shown := items
	if limit > 0 && len(items) > limit {
		shown = items[:limit]
	}

	var sb strings.Builder

	if len(shown) < len(items) {
		fmt.Fprintf(&sb, "\nFirst few %s:\n", resource)
	} else {
		fmt.Fprintf(&sb, "\n%s (%d):\n", capitalize(string(resource)), len(items))
	}

	for i, item := range shown {
		prefix := "\u251c"
		if i == len(shown)-1 {
			prefix = "\u2570"
		}

		detail := item.ID()
		if extra != "" {
			detail = item.Field(extra)
		}
		fmt.Fprintf(&sb, "%s\u2500\u2500 %s (%s)\n", prefix, item.Label(), detail)
	}

	return sb.String()
}

// FormatShowDetail formats a single show with a truncated description
func (f *ConsoleFormatter) FormatShowDetail(show Show) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Show title: %s\n", show.Label)
	if show.Description != "" {
		fmt.Fprintf(&sb, "Description: %s...\n", truncate(show.Description, descriptionPreview))
	}

	return sb.String()
}

// FormatError formats a request failure with a hint on how to fix it
func (f *ConsoleFormatter) FormatError(err error) string {
	var sb strings.Builder

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		fmt.Fprintf(&sb, "Error: %v\n", err)
		return sb.String()
	}

	fmt.Fprintf(&sb, "Error: %s\n", apiErr.Message)
	if apiErr.StatusCode != 0 {
		fmt.Fprintf(&sb, "HTTP Status: %d\n", apiErr.StatusCode)
	}

	switch apiErr.Kind {
	case KindAuthenticationFailed:
		sb.WriteString("Authentication failed. Check your APP_ID and APP_KEY.\n")
	case KindResourceNotFound:
		sb.WriteString("Resource not found. Check that the API endpoint is correct.\n")
	case KindUsageLimitExceeded:
		sb.WriteString("API usage limits exceeded. Check your plan limits.\n")
	case KindServerError, KindUnexpectedResponse:
		if apiErr.Body != "" {
			fmt.Fprintf(&sb, "Response body: %s\n", apiErr.Body)
		}
	}

	return sb.String()
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
