package htmlform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_HiddenInput(t *testing.T) {
	page := `<!doctype html>
<html><body>
<form method="POST">
<input id="csrf_token" name="csrf_token" type="hidden" value="tok-abc123">
<input name="username" type="text">
</form>
</body></html>`

	value, err := Value(strings.NewReader(page), "csrf_token")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc123", value)
}

func TestValue_FirstMatchWins(t *testing.T) {
	page := `<html><body>
<input id="token" value="first">
<input id="token" value="second">
</body></html>`

	value, err := Value(strings.NewReader(page), "token")
	require.NoError(t, err)
	assert.Equal(t, "first", value)
}

func TestValue_MissingElement(t *testing.T) {
	page := `<html><body><p>maintenance</p></body></html>`

	_, err := Value(strings.NewReader(page), "csrf_token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csrf_token")
}

func TestValue_NoValueAttr(t *testing.T) {
	page := `<html><body><input id="csrf_token" name="csrf_token"></body></html>`

	_, err := Value(strings.NewReader(page), "csrf_token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no value")
}

func TestValue_EmptyValue(t *testing.T) {
	page := `<html><body><input id="csrf_token" value=""></body></html>`

	_, err := Value(strings.NewReader(page), "csrf_token")
	require.Error(t, err)
}
