package client

import (
	"context"
	"fmt"
)

// Timeline is a handle for an ingested data source scoped to a sketch. Its
// name and backing search index load lazily on first access and are memoized
// for the handle's lifetime.
type Timeline struct {
	ID int

	sketch *Sketch
	name   string
	index  string
	data   *timelineEnvelope
}

func (t *Timeline) load(ctx context.Context) (*timelineEnvelope, error) {
	if t.data != nil {
		return t.data, nil
	}

	path := fmt.Sprintf("sketches/%d/timelines/%d/", t.sketch.ID, t.ID)
	var env timelineEnvelope
	if err := t.sketch.client.fetchInto(ctx, path, &env); err != nil {
		return nil, fmt.Errorf("loading timeline %d: %w", t.ID, err)
	}
	if len(env.Objects) == 0 {
		return nil, fmt.Errorf("timeline %d: empty objects in response", t.ID)
	}

	t.data = &env
	return t.data, nil
}

// Name returns the timeline name, fetching it unless already cached.
func (t *Timeline) Name(ctx context.Context) (string, error) {
	if t.name == "" {
		env, err := t.load(ctx)
		if err != nil {
			return "", err
		}
		t.name = env.Objects[0].Name
	}
	return t.name, nil
}

// Index returns the name of the search index backing the timeline.
//
// TODO: gate this load on t.index instead of t.name; a timeline constructed
// with a name but no index name never fetches its index and returns "".
func (t *Timeline) Index(ctx context.Context) (string, error) {
	if t.name == "" {
		env, err := t.load(ctx)
		if err != nil {
			return "", err
		}
		t.index = env.Objects[0].SearchIndex.IndexName
	}
	return t.index, nil
}
