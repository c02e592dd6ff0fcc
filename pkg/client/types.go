package client

import (
	"encoding/json"
	"fmt"
)

// Sketch status values commonly returned by the server.
const (
	StatusNew      = "new"
	StatusReady    = "ready"
	StatusArchived = "archived"
	StatusDeleted  = "deleted"
)

// QueryFilter constrains an explore search. The zero value of TimeStart and
// TimeEnd serializes as null, which the server treats as unbounded.
type QueryFilter struct {
	TimeStart *string `json:"time_start"`
	TimeEnd   *string `json:"time_end"`
	Limit     int     `json:"limit"`
	Indices   string  `json:"indices"`
	Order     string  `json:"order"`
}

// defaultQueryFilter returns the filter applied when an explore request
// carries neither a caller filter nor a view.
func defaultQueryFilter() *QueryFilter {
	return &QueryFilter{
		Limit:   40,
		Indices: "_all",
		Order:   "asc",
	}
}

// sketchEnvelope is the wire shape of GET sketches/{id}: the sketch itself
// in objects[0] and its saved views under meta.
type sketchEnvelope struct {
	Objects []sketchObject `json:"objects"`
	Meta    sketchMeta     `json:"meta"`
}

type sketchObject struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Status      []statusObject   `json:"status"`
	Timelines   []timelineObject `json:"timelines"`
}

type statusObject struct {
	Status string `json:"status"`
}

type sketchMeta struct {
	Views []viewSummary `json:"views"`
}

type viewSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// sketchListEnvelope is the wire shape of GET sketches/. The server nests the
// summary list inside objects[0], so objects is a list whose first element is
// itself a list.
type sketchListEnvelope struct {
	Objects []json.RawMessage `json:"objects"`
}

type sketchSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type viewEnvelope struct {
	Objects []viewObject `json:"objects"`
}

// viewObject holds a saved search. The filter and DSL are stored server-side
// as JSON-encoded strings, not nested objects.
type viewObject struct {
	QueryString string `json:"query_string"`
	QueryFilter string `json:"query_filter"`
	QueryDSL    string `json:"query_dsl"`
}

type timelineEnvelope struct {
	Objects []timelineObject `json:"objects"`
}

type timelineObject struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	SearchIndex searchIndex `json:"searchindex"`
}

type searchIndex struct {
	IndexName string `json:"index_name"`
}

// exploreBody is the POST body for sketches/{id}/explore/.
type exploreBody struct {
	Query  string `json:"query"`
	Filter any    `json:"filter"`
	DSL    any    `json:"dsl"`
}

// APIError represents an error response from the Caseboard API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("caseboard API error %d: %s", e.StatusCode, e.Message)
}

// errorResponse is the JSON structure for API errors.
type errorResponse struct {
	Error string `json:"error"`
}
