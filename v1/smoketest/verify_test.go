package smoketest

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/qdrant-smoketest/v1/vectordb"
)

func TestVerifyResults(t *testing.T) {
	tests := []struct {
		name    string
		results []vectordb.SearchResult
		wantErr error
	}{
		{
			name:    "empty",
			results: nil,
		},
		{
			name: "ordered",
			results: []vectordb.SearchResult{
				{ID: 3, Score: 0.99}, {ID: 1, Score: 0.95}, {ID: 9, Score: 0.95},
			},
		},
		{
			name: "too many",
			results: []vectordb.SearchResult{
				{ID: 0, Score: 0.9}, {ID: 1, Score: 0.8}, {ID: 2, Score: 0.7}, {ID: 3, Score: 0.6},
			},
			wantErr: ErrResultCount,
		},
		{
			name:    "unknown id",
			results: []vectordb.SearchResult{{ID: 10, Score: 0.9}},
			wantErr: ErrUnknownPoint,
		},
		{
			name: "ascending",
			results: []vectordb.SearchResult{
				{ID: 1, Score: 0.5}, {ID: 2, Score: 0.6},
			},
			wantErr: ErrResultOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := verifyResults(tt.results, 3, 10)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckDimensions(t *testing.T) {
	assert.NoError(t, checkDimensions([]vectordb.Point{{ID: 0, Vector: make([]float32, 4)}}, 4))

	err := checkDimensions([]vectordb.Point{{ID: 2, Vector: make([]float32, 3)}}, 4)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

var resultLine = regexp.MustCompile(`^- ID: \d+, Score: -?\d+\.\d{4}$`)

func TestWriteResultsAndSuccess(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, []vectordb.SearchResult{
		{ID: 4, Score: 0.987654},
		{ID: 0, Score: 0.5},
		{ID: 9, Score: 0.12345},
	}))
	require.NoError(t, WriteSuccess(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "🔍 Search Results:", lines[0])
	assert.Equal(t, "- ID: 4, Score: 0.9877", lines[1])
	assert.Equal(t, "- ID: 0, Score: 0.5000", lines[2])
	assert.Equal(t, "- ID: 9, Score: 0.1235", lines[3])
	for _, l := range lines[1:4] {
		assert.Regexp(t, resultLine, l)
	}
	assert.Equal(t, "", lines[4])
	assert.Equal(t, "✅ Qdrant is working correctly!", lines[5])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteResults_WriterError(t *testing.T) {
	assert.Error(t, WriteResults(failingWriter{}, nil))
	assert.Error(t, WriteSuccess(failingWriter{}))
}

func TestStepError(t *testing.T) {
	err := error(&StepError{Step: StepSearch, Err: ErrResultOrder})

	assert.ErrorIs(t, err, ErrResultOrder)
	assert.Equal(t, StepSearch, FailedStep(err))
	assert.Equal(t, "", FailedStep(errors.New("plain")))
	assert.Contains(t, err.Error(), "search")
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cases := map[string]func(*Config){
		"collection": func(c *Config) { c.Collection = "" },
		"dimension":  func(c *Config) { c.Dimension = 0 },
		"points":     func(c *Config) { c.Points = -1 },
		"limit":      func(c *Config) { c.Limit = 0 },
		"distance":   func(c *Config) { c.Distance = "Hamming" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
