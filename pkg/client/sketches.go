package client

import (
	"context"
	"encoding/json"
	"fmt"
)

// CreateSketch creates a new sketch and returns a handle for it. When
// description is empty it defaults to the name. The handle is lazy: no
// follow-up metadata fetch happens until a data-dependent call.
func (c *Client) CreateSketch(ctx context.Context, name, description string) (*Sketch, error) {
	if description == "" {
		description = name
	}

	body := map[string]string{
		"name":        name,
		"description": description,
	}

	var env sketchEnvelope
	if err := c.postJSON(ctx, "sketches/", body, &env); err != nil {
		return nil, fmt.Errorf("creating sketch: %w", err)
	}
	if len(env.Objects) == 0 {
		return nil, fmt.Errorf("creating sketch: empty objects in response")
	}

	return c.Sketch(env.Objects[0].ID), nil
}

// Sketch returns a handle for the sketch with the given ID. No network call
// is made; metadata loads lazily on first access.
func (c *Client) Sketch(id int) *Sketch {
	return &Sketch{ID: id, client: c}
}

// Sketches lists all sketches visible to the session. Returned handles carry
// ID and name only; full metadata loads lazily per handle.
func (c *Client) Sketches(ctx context.Context) ([]*Sketch, error) {
	var env sketchListEnvelope
	if err := c.fetchInto(ctx, "sketches/", &env); err != nil {
		return nil, fmt.Errorf("listing sketches: %w", err)
	}
	if len(env.Objects) == 0 {
		return nil, nil
	}

	// The collection endpoint nests the summary list inside objects[0].
	var summaries []sketchSummary
	if err := json.Unmarshal(env.Objects[0], &summaries); err != nil {
		return nil, fmt.Errorf("decoding sketch list: %w", err)
	}

	sketches := make([]*Sketch, 0, len(summaries))
	for _, s := range summaries {
		sketches = append(sketches, &Sketch{ID: s.ID, client: c, name: s.Name})
	}
	return sketches, nil
}
