package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRadii_UnmarshalJSON(t *testing.T) {
	var ts TokenSet
	require.NoError(t, json.Unmarshal([]byte(`{"radii":[1,2,3.5,4]}`), &ts))
	assert.Equal(t, Radii{1, 2, 3.5, 4}, ts.Radii)
	assert.Equal(t, 2.0, ts.CornerRadius())

	for _, doc := range []string{
		`{"radii":[8,12]}`,
		`{"radii":[1,2,3,4,5,6]}`,
		`{"radii":[]}`,
		`{"radii":null}`,
		`{"radii":["8",1,2,3]}`,
	} {
		t.Run(doc, func(t *testing.T) {
			var ts TokenSet
			err := json.Unmarshal([]byte(doc), &ts)
			assert.ErrorIs(t, err, ErrInvalidSchema)
		})
	}
}
