package descriptor

import (
	"encoding/json"
	"testing"

	"counterapp/internal/counter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "element", d.Type)
	assert.Equal(t, "Counter app", d.Gizmo.Title)
	assert.Equal(t, "rita", d.Author())
	assert.Equal(t, []string{"count"}, d.Configurable())

	n, ok := d.DemoCount()
	require.True(t, ok)
	assert.Equal(t, counter.Default, n, "demo starts where the widget starts")
}

func TestRef(t *testing.T) {
	assert.Equal(t, "lib/counter-app.haxProperties.json", Ref())
}

func TestRaw_IsValidJSONAndCopied(t *testing.T) {
	b := Raw()
	assert.True(t, json.Valid(b))
	b[0] = 'x'
	assert.True(t, json.Valid(Raw()), "Raw must return a copy")
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte(`not json`))
	assert.ErrorContains(t, err, "parse descriptor")

	_, err = Parse([]byte(`{"gizmo":{}}`))
	assert.ErrorContains(t, err, "title is empty")
}

func TestAuthor_Missing(t *testing.T) {
	d, err := Parse([]byte(`{"gizmo":{"title":"x"}}`))
	require.NoError(t, err)
	assert.Empty(t, d.Author())
	_, ok := d.DemoCount()
	assert.False(t, ok)
}
