// Package theralink provides a Go client SDK for the TheraLink
// healthcare/rehabilitation platform REST API.
//
// The SDK exposes typed methods for authentication, users, clients
// (patients), and rehabilitation programs, with automatic retry of
// transient failures and typed errors for everything else.
//
// Basic usage:
//
//	client, err := theralink.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	users, page, err := client.Users().List(ctx, theralink.ListOptions{Limit: 20})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, u := range users {
//	    fmt.Println(u.Email)
//	}
//	if page.HasMore() {
//	    // fetch the next page
//	}
//
// Failed calls return a typed error; match conditions with errors.Is:
//
//	if errors.Is(err, theralink.ErrNotFound) {
//	    // Handle missing resource
//	}
package theralink
