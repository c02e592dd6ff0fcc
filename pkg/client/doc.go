// Package client provides a Go SDK for the Caseboard REST API.
//
// Caseboard organizes investigations into sketches; each sketch aggregates
// timelines (ingested data sources backed by search indices) and views (saved
// searches). The SDK authenticates a session against a server, wraps those
// resources in lazy-loading handles, and exposes search and upload
// operations.
//
// # Quick Start
//
// Create an authenticated client and work with a sketch:
//
//	c, err := client.New(ctx, "https://caseboard.example.com", "analyst", "secret")
//	if err != nil {
//	    return err
//	}
//
//	sketch := c.Sketch(42)
//	name, err := sketch.Name(ctx)
//
// Use custom configuration:
//
//	c, err := client.New(ctx, host, user, pass,
//	    client.WithTimeout(10*time.Second),
//	    client.WithInsecureTLS(),
//	    client.WithResourceCache(256),
//	)
//
// # Lazy Loading
//
// Sketch, View and Timeline are thin handles: constructing one issues no
// network call. The first data-dependent call fetches the resource's metadata
// and memoizes it for the handle's lifetime. There is no refresh: once
// loaded, a handle's data never changes, even if the server's does. Build a
// fresh handle to see fresh data.
//
// # Searching
//
// Explore runs a search over a sketch's timelines. Supply a query string,
// a structured filter, raw query DSL, or a saved view:
//
//	result, err := sketch.Explore(ctx, client.ExploreRequest{
//	    QueryString: "src_ip:10.0.0.5",
//	})
//
// When a view is supplied its stored query fields take precedence over any
// caller-supplied ones:
//
//	views, err := sketch.Views(ctx)
//	result, err := sketch.Explore(ctx, client.ExploreRequest{View: views[0]})
//
// The search response is returned verbatim as json.RawMessage; pair it with
// the jsonq package to extract fields.
//
// # Uploading Timelines
//
// Upload ingests a local file as a new timeline:
//
//	indexID, err := sketch.Upload(ctx, "firewall-logs", "/tmp/fw.csv")
//
// # Errors
//
// HTTP error responses surface as *APIError carrying the status code, so
// authentication and permission failures (401, 403) are distinguishable from
// malformed-response decode errors. Explore with no query at all fails fast
// with ErrNoQuery before any request is made.
//
// # Concurrency
//
// A Client and its handles are not safe for concurrent use. The session's
// header state and every handle's lazy cache are written without
// synchronization; use one client per goroutine or add external locking.
package client
