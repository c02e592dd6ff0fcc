package jsonq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_Simple(t *testing.T) {
	data := []byte(`{"meta": {"es_time": 12}, "objects": [{"message": "root login"}]}`)

	result, err := Extract(data, ".objects[].message", false, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"root login"}, result.Values)
	assert.Equal(t, 1, result.RawCount)
}

func TestExtract_Deduplicate(t *testing.T) {
	data := []byte(`{"objects": [{"user": "root"}, {"user": "root"}, {"user": "www"}]}`)

	result, err := Extract(data, ".objects[].user", true, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"root", "www"}, result.Values)
	assert.Equal(t, 3, result.RawCount)
}

func TestExtract_MaxResults(t *testing.T) {
	data := []byte(`{"objects": [1, 2, 3, 4, 5]}`)

	result, err := Extract(data, ".objects[]", false, 3)
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1), float64(2), float64(3)}, result.Values)
}

func TestExtract_SkipsNil(t *testing.T) {
	data := []byte(`{"objects": [{"msg": "a"}, {"other": 1}]}`)

	result, err := Extract(data, ".objects[].msg", false, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"a"}, result.Values)
}

func TestExtract_InvalidExpression(t *testing.T) {
	_, err := Extract([]byte(`{}`), ".[unclosed", false, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid jq expression")
}

func TestExtract_InvalidJSON(t *testing.T) {
	_, err := Extract([]byte(`not json`), ".foo", false, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON data")
}

func TestExtract_RuntimeErrorHint(t *testing.T) {
	data := []byte(`{"objects": null}`)

	result, err := Extract(data, ".objects[]", false, 0)
	require.NoError(t, err)
	assert.Empty(t, result.Values)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "the path may not exist")
}
