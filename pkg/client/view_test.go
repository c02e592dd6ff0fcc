package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const view2Payload = `{
	"objects": [{
		"query_string": "event_type:login",
		"query_filter": "{\"limit\": 10}",
		"query_dsl": "{\"query\": {\"match_all\": {}}}"
	}]
}`

func TestView_LazyLoadAndMemoization(t *testing.T) {
	ts := newTestServer(t)
	ts.handle("/api/v1/sketches/7", jsonHandler(sketch7Payload))
	ts.handle("/api/v1/sketches/7/views/2/", jsonHandler(view2Payload))

	c := newTestClient(t, ts)
	ctx := context.Background()

	views, err := c.Sketch(7).Views(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)

	// Listing views does not load each view's stored query.
	assert.Equal(t, 0, ts.count("/api/v1/sketches/7/views/2/"))

	qs, err := views[0].QueryString(ctx)
	require.NoError(t, err)
	assert.Equal(t, "event_type:login", qs)

	filter, err := views[0].QueryFilter(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"limit": 10}`, filter)

	dsl, err := views[0].QueryDSL(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"query": {"match_all": {}}}`, dsl)

	// Three reads, one fetch.
	assert.Equal(t, 1, ts.count("/api/v1/sketches/7/views/2/"))
}

func TestView_EmptyObjects(t *testing.T) {
	ts := newTestServer(t)
	ts.handle("/api/v1/sketches/7", jsonHandler(sketch7Payload))
	ts.handle("/api/v1/sketches/7/views/2/", jsonHandler(`{"objects": []}`))

	c := newTestClient(t, ts)
	views, err := c.Sketch(7).Views(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)

	_, err = views[0].QueryString(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty objects")
}
