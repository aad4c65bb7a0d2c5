// Package summary computes per-entity statistics over extracted series.
package summary

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/montanaflynn/stats"
	"github.com/ukaji3/semchart-go/pkg/semchart/models"
	gstat "gonum.org/v1/gonum/stat"
)

// EntitySummary describes the present values of one entity.
type EntitySummary struct {
	ID      string
	Count   int
	Min     float64
	Max     float64
	Mean    float64
	Median  float64
	First   float64
	Last    float64
	// Delta is Last minus First.
	Delta float64
	// Slope is the least-squares change per series step. Zero when fewer
	// than two values are present.
	Slope float64
}

// Summarize computes statistics for every entity of set. Absent values are
// skipped; positions along the series are kept for the trend slope.
func Summarize(set models.SeriesSet) ([]EntitySummary, error) {
	out := make([]EntitySummary, 0, len(set.Entities))
	for _, e := range set.Entities {
		s, err := summarizeEntity(e)
		if err != nil {
			return nil, fmt.Errorf("summarize %q: %w", e.ID, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func summarizeEntity(e models.Entity) (EntitySummary, error) {
	var xs, ys []float64
	for i, v := range e.Values {
		if v.Present {
			xs = append(xs, float64(i))
			ys = append(ys, v.Num)
		}
	}

	s := EntitySummary{ID: e.ID, Count: len(ys)}
	if len(ys) == 0 {
		return s, nil
	}

	data := stats.Float64Data(ys)
	var err error
	if s.Min, err = data.Min(); err != nil {
		return s, err
	}
	if s.Max, err = data.Max(); err != nil {
		return s, err
	}
	if s.Mean, err = data.Mean(); err != nil {
		return s, err
	}
	if s.Median, err = data.Median(); err != nil {
		return s, err
	}

	s.First = ys[0]
	s.Last = ys[len(ys)-1]
	s.Delta = s.Last - s.First
	if len(ys) >= 2 {
		_, s.Slope = gstat.LinearRegression(xs, ys, nil, false)
	}
	return s, nil
}

// WriteTable prints summaries as an aligned text table.
func WriteTable(w io.Writer, summaries []EntitySummary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tN\tMIN\tMAX\tMEAN\tMEDIAN\tDELTA\tSLOPE")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Count,
			num(s.Min), num(s.Max), num(s.Mean), num(s.Median), num(s.Delta), num(s.Slope))
	}
	return tw.Flush()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
