package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
)

// ErrNoQuery is returned by Explore when the request carries no query string,
// filter, DSL or view.
var ErrNoQuery = errors.New("explore requires a query string, filter, DSL or view")

// Sketch is a handle for one investigation case. Metadata is fetched lazily
// on the first data-dependent call and memoized for the handle's lifetime;
// there is no refresh.
type Sketch struct {
	ID int

	client *Client
	name   string
	data   *sketchEnvelope
}

// load fetches and memoizes the sketch metadata.
func (s *Sketch) load(ctx context.Context) (*sketchEnvelope, error) {
	if s.data != nil {
		return s.data, nil
	}

	var env sketchEnvelope
	if err := s.client.fetchInto(ctx, fmt.Sprintf("sketches/%d", s.ID), &env); err != nil {
		return nil, fmt.Errorf("loading sketch %d: %w", s.ID, err)
	}
	if len(env.Objects) == 0 {
		return nil, fmt.Errorf("sketch %d: empty objects in response", s.ID)
	}

	s.data = &env
	return s.data, nil
}

// Name returns the sketch name, fetching metadata unless a name is already
// cached (for example from a Sketches listing).
func (s *Sketch) Name(ctx context.Context) (string, error) {
	if s.name != "" {
		return s.name, nil
	}
	env, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	s.name = env.Objects[0].Name
	return s.name, nil
}

// Description returns the sketch description.
func (s *Sketch) Description(ctx context.Context) (string, error) {
	env, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	return env.Objects[0].Description, nil
}

// Status returns the sketch's current status, e.g. StatusReady.
func (s *Sketch) Status(ctx context.Context) (string, error) {
	env, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	if len(env.Objects[0].Status) == 0 {
		return "", fmt.Errorf("sketch %d has no status", s.ID)
	}
	return env.Objects[0].Status[0].Status, nil
}

// Views returns handles for the sketch's saved views.
func (s *Sketch) Views(ctx context.Context) ([]*View, error) {
	env, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*View, 0, len(env.Meta.Views))
	for _, v := range env.Meta.Views {
		views = append(views, &View{ID: v.ID, Name: v.Name, sketch: s})
	}
	return views, nil
}

// Timelines returns handles for the sketch's timelines, with name and backing
// search index pre-populated from the sketch metadata.
func (s *Sketch) Timelines(ctx context.Context) ([]*Timeline, error) {
	env, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	timelines := make([]*Timeline, 0, len(env.Objects[0].Timelines))
	for _, t := range env.Objects[0].Timelines {
		timelines = append(timelines, &Timeline{
			ID:     t.ID,
			sketch: s,
			name:   t.Name,
			index:  t.SearchIndex.IndexName,
		})
	}
	return timelines, nil
}

// Upload ingests the file at filePath as a new timeline with the given name.
// It returns the ID of the search index backing the new timeline.
func (s *Sketch) Upload(ctx context.Context, timelineName, filePath string) (int, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("opening upload file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return 0, fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return 0, fmt.Errorf("reading upload file: %w", err)
	}
	if err := w.WriteField("name", timelineName); err != nil {
		return 0, fmt.Errorf("building multipart body: %w", err)
	}
	if err := w.WriteField("sketch_id", strconv.Itoa(s.ID)); err != nil {
		return 0, fmt.Errorf("building multipart body: %w", err)
	}
	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("building multipart body: %w", err)
	}

	req, err := s.client.newRequest(ctx, http.MethodPost, s.client.apiRoot+"/upload/", &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := s.client.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("uploading timeline: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return 0, parseError(resp)
	}

	var env sketchEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return 0, fmt.Errorf("decoding response: %w", err)
	}
	if len(env.Objects) == 0 {
		return 0, fmt.Errorf("upload: empty objects in response")
	}
	return env.Objects[0].ID, nil
}

// ExploreRequest describes a search over a sketch's timelines. At least one
// field must be set. QueryDSL, when present, must hold valid JSON; it is sent
// to the server as-is.
type ExploreRequest struct {
	QueryString string
	QueryDSL    json.RawMessage
	QueryFilter *QueryFilter
	View        *View
}

// Explore runs a search over the sketch's timelines and returns the raw
// search response. When no filter is supplied the default filter applies
// (no time bounds, limit 40, all indices, ascending).
//
// When View is set, the view's stored query string, filter and DSL take
// precedence over any caller-supplied values.
func (s *Sketch) Explore(ctx context.Context, req ExploreRequest) (json.RawMessage, error) {
	if req.QueryString == "" && len(req.QueryDSL) == 0 && req.QueryFilter == nil && req.View == nil {
		return nil, ErrNoQuery
	}

	body := exploreBody{
		Query: req.QueryString,
	}

	if req.QueryFilter != nil {
		body.Filter = req.QueryFilter
	} else {
		body.Filter = defaultQueryFilter()
	}
	if len(req.QueryDSL) > 0 {
		body.DSL = req.QueryDSL
	}

	if req.View != nil {
		query, err := req.View.QueryString(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading view query: %w", err)
		}
		filterJSON, err := req.View.QueryFilter(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading view filter: %w", err)
		}
		dslJSON, err := req.View.QueryDSL(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading view DSL: %w", err)
		}

		var filter, dsl any
		if err := json.Unmarshal([]byte(filterJSON), &filter); err != nil {
			return nil, fmt.Errorf("decoding view filter: %w", err)
		}
		if err := json.Unmarshal([]byte(dslJSON), &dsl); err != nil {
			return nil, fmt.Errorf("decoding view DSL: %w", err)
		}
		body = exploreBody{Query: query, Filter: filter, DSL: dsl}
	}

	var result json.RawMessage
	if err := s.client.postJSON(ctx, fmt.Sprintf("sketches/%d/explore/", s.ID), body, &result); err != nil {
		return nil, fmt.Errorf("exploring sketch %d: %w", s.ID, err)
	}
	return result, nil
}
