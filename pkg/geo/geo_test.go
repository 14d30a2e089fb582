package geo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "farmgate/pkg/domain-errors"
)

func TestFromJSONObject(t *testing.T) {
	g, err := FromJSON(json.RawMessage(`{"type":"Point","coordinates":[73.85,18.52]}`))
	require.NoError(t, err)
	assert.Equal(t, "Point", g.Type)
	assert.JSONEq(t, `[73.85,18.52]`, string(g.Coordinates))
}

func TestFromJSONSerializedString(t *testing.T) {
	raw := json.RawMessage(`"{\"type\":\"Polygon\",\"coordinates\":[[[0,0],[0,1],[1,1],[0,0]]]}"`)
	g, err := FromJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, "Polygon", g.Type)
}

func TestFromJSONRejectsMissingFields(t *testing.T) {
	cases := map[string]string{
		"missing type":        `{"coordinates":[1,2]}`,
		"missing coordinates": `{"type":"Point"}`,
		"null coordinates":    `{"type":"Point","coordinates":null}`,
		"not json":            `{nope}`,
	}
	for name, input := range cases {
		_, err := FromJSON(json.RawMessage(input))
		require.Error(t, err, name)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation), name)
	}
}

func TestPointRoundTrip(t *testing.T) {
	p := Point(0, 0)
	assert.JSONEq(t, `{"type":"Point","coordinates":[0,0]}`, p.GeoJSON())
}
