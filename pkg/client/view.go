package client

import (
	"context"
	"fmt"
)

// View is a handle for a saved search scoped to a sketch. Its stored query
// fields load lazily on first access and are memoized for the handle's
// lifetime.
type View struct {
	ID   int
	Name string

	sketch *Sketch
	data   *viewEnvelope
}

func (v *View) load(ctx context.Context) (*viewEnvelope, error) {
	if v.data != nil {
		return v.data, nil
	}

	path := fmt.Sprintf("sketches/%d/views/%d/", v.sketch.ID, v.ID)
	var env viewEnvelope
	if err := v.sketch.client.fetchInto(ctx, path, &env); err != nil {
		return nil, fmt.Errorf("loading view %d: %w", v.ID, err)
	}
	if len(env.Objects) == 0 {
		return nil, fmt.Errorf("view %d: empty objects in response", v.ID)
	}

	v.data = &env
	return v.data, nil
}

// QueryString returns the view's stored query string.
func (v *View) QueryString(ctx context.Context) (string, error) {
	env, err := v.load(ctx)
	if err != nil {
		return "", err
	}
	return env.Objects[0].QueryString, nil
}

// QueryFilter returns the view's stored filter as a JSON-encoded string.
func (v *View) QueryFilter(ctx context.Context) (string, error) {
	env, err := v.load(ctx)
	if err != nil {
		return "", err
	}
	return env.Objects[0].QueryFilter, nil
}

// QueryDSL returns the view's stored query DSL as a JSON-encoded string.
func (v *View) QueryDSL(ctx context.Context) (string, error) {
	env, err := v.load(ctx)
	if err != nil {
		return "", err
	}
	return env.Objects[0].QueryDSL, nil
}
