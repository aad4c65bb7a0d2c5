package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/semchart-go/pkg/semchart/models"
)

func sampleDoc() *models.Document {
	return &models.Document{
		Source:    "marks.csv",
		HeaderRow: 1,
		UsedRange: "A1:C3",
		SeriesSet: models.SeriesSet{
			Labels: []string{"SEM1", "SEM2"},
			Entities: []models.Entity{
				{ID: "S1", Values: []models.Value{models.Present(7.5), models.Absent()}},
				{ID: "S2", Values: []models.Value{models.Present(0), models.Present(1234)}},
			},
		},
	}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleDoc(), false)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"source": "marks.csv",
		"header_row": 1,
		"used_range": "A1:C3",
		"series_labels": ["SEM1", "SEM2"],
		"entities": [
			{"id": "S1", "values": [7.5, null]},
			{"id": "S2", "values": [0, 1234]}
		]
	}`, string(data))
}

func TestToYAML(t *testing.T) {
	data, err := ToYAML(sampleDoc())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "series_labels:\n- SEM1\n- SEM2\n")
	assert.Contains(t, out, "- id: S1\n  values:\n  - 7.5\n  - null\n")
	assert.NotContains(t, out, "sheet:")
}

func TestEncodeUnknownFormat(t *testing.T) {
	_, err := Encode(sampleDoc(), "xml", false)
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteFile(path, []byte("first")))
	require.NoError(t, WriteFile(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}
