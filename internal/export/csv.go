package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/EEseka/physiquest/internal/engine"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteSeriesCSV writes one curve with its axis labels as the header.
func WriteSeriesCSV(w io.Writer, s engine.Series) error {
	cw := csv.NewWriter(w)
	xl, yl := s.XLabel, s.YLabel
	if xl == "" {
		xl = "x"
	}
	if yl == "" {
		yl = "y"
	}
	if err := cw.Write([]string{xl, yl}); err != nil {
		return err
	}
	for _, p := range s.Points {
		if err := cw.Write([]string{formatFloat(p.X), formatFloat(p.Y)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePathCSV writes a path's points in path order.
func WritePathCSV(w io.Writer, p engine.Path) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, pt := range p.Points {
		if err := cw.Write([]string{formatFloat(pt.X), formatFloat(pt.Y)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteScalarsCSV writes name,value,unit rows; undetermined values are
// left empty.
func WriteScalarsCSV(w io.Writer, scalars []engine.Scalar) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "value", "unit"}); err != nil {
		return err
	}
	for _, sc := range scalars {
		value := ""
		if v, ok := sc.Value.Get(); ok {
			value = formatFloat(v)
		}
		if err := cw.Write([]string{sc.Name, value, sc.Unit}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
