// Package twit provides a client for the TWiT.tv API.
//
// The API exposes shows, episodes, live streams and people. Requests are
// authenticated with an app id and app key sent as the "app-id" and
// "app-key" headers.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := twit.NewClient(appID, appKey, logger,
//		twit.WithBaseURL("https://twit.tv/api/v1.0"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	shows, err := client.ListShows(ctx, nil)
//	if err != nil {
//		var apiErr *twit.APIError
//		if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
//			// check app id and key
//		}
//	}
//	count, _ := shows.Count()
//
// Every call issues exactly one GET. There is no retry, pagination or
// caching; the payload is returned as decoded JSON without validation.
//
// # Error Handling
//
// Non-200 responses and network failures are returned as *APIError, whose
// Kind classifies the failure. The sentinels work with errors.Is:
//
//   - ErrAuthenticationFailed: 401 or 403
//   - ErrResourceNotFound: 404
//   - ErrUsageLimitExceeded: 500 whose body says usage limits are exceeded
//   - ErrServerError: any other 500
//   - ErrUnexpectedResponse: any other status
//   - ErrTransportFailure: no response was received
//
// A 200 response whose body is not valid JSON yields *ResponseParseError
// (ErrResponseParse).
package twit
