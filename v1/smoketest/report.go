package smoketest

import (
	"fmt"
	"io"
	"time"

	"github.com/Aleph-Alpha/qdrant-smoketest/v1/vectordb"
)

const (
	resultsHeader  = "🔍 Search Results:"
	successMessage = "✅ Qdrant is working correctly!"
)

// Report is what a run did, for callers that want more than the console output.
type Report struct {
	Collection   string
	Points       []vectordb.Point
	StoredPoints uint64
	Query        []float32
	Results      []vectordb.SearchResult
	Elapsed      time.Duration
}

// WriteResults prints the header and one "- ID: <id>, Score: <score>" line
// per result, scores with four decimals.
func WriteResults(w io.Writer, results []vectordb.SearchResult) error {
	if _, err := fmt.Fprintln(w, resultsHeader); err != nil {
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "- ID: %d, Score: %.4f\n", r.ID, r.Score); err != nil {
			return err
		}
	}
	return nil
}

// WriteSuccess prints a blank line followed by the success confirmation.
func WriteSuccess(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\n%s\n", successMessage)
	return err
}
