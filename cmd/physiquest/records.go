package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/EEseka/physiquest/internal/automation"
	"github.com/EEseka/physiquest/internal/export"
	"github.com/EEseka/physiquest/internal/storage"
	"github.com/EEseka/physiquest/internal/viz"
)

const (
	svgWidth  = 800
	svgHeight = 600
	svgScale  = 4.0
)

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	runner := automation.NewRunner(cfg.Workers, log)
	results, err := runner.Run(cmd.Context(), sc)
	if err != nil {
		return err
	}

	var st storage.Store
	for _, res := range results {
		if res.Err != nil || res.Step.SaveAs == "" {
			continue
		}
		if st == nil {
			if st, err = openStore(); err != nil {
				return err
			}
			defer st.Close()
		}
		meta, err := st.Save(storage.NewRecord(res.Step.SaveAs, res.Inputs, res.Summary))
		if err != nil {
			return err
		}
		log.Info("saved step", zap.Int("step", res.Index+1), zap.String("id", meta.ID), zap.String("label", res.Step.SaveAs))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d steps\n\n", viz.Title(sc.Name), len(results))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tDOMAIN\tSTATUS\tOUTPUTS\tCURVES\tSAVED AS")

	failed := 0
	for _, res := range results {
		status, outputs, curves := "ok", "", ""
		switch {
		case res.Err != nil:
			failed++
			status = "error: " + res.Err.Error()
		case res.Cached:
			status = "cached"
		}
		if res.Err == nil {
			known := 0
			for _, s := range res.Summary.Scalars {
				if s.Value.Present() {
					known++
				}
			}
			outputs = fmt.Sprintf("%d/%d", known, len(res.Summary.Scalars))
			curves = fmt.Sprint(len(res.Summary.Curves))
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", res.Index+1, res.Step.Domain, status, outputs, curves, res.Step.SaveAs)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d steps failed", failed, len(results))
	}
	return nil
}

func sweep(cmd *cobra.Command, args []string) error {
	d, base, err := request(args[0])
	if err != nil {
		return err
	}

	runner := automation.NewRunner(cfg.Workers, log)
	points, err := runner.Sweep(cmd.Context(), automation.Sweep{
		Domain: d,
		Base:   base,
		Param:  sweepParam,
		Min:    sweepFrom,
		Max:    sweepTo,
		Steps:  sweepSteps,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	series := automation.SweepSeries(sweepParam, sweepOutput, points)
	if len(series.Points) == 0 {
		return fmt.Errorf("%s is undetermined at every %s in [%g, %g]", sweepOutput, sweepParam, sweepFrom, sweepTo)
	}
	fmt.Fprintln(out, viz.Plot(series, cfg.Plot.Width, cfg.Plot.Height))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", strings.ToUpper(sweepParam), strings.ToUpper(sweepOutput))
	for _, p := range points {
		value := p.Summary.Scalar(sweepOutput).String()
		if p.Err != nil {
			value = "error: " + p.Err.Error()
		}
		fmt.Fprintf(w, "%g\t%s\n", p.Value, value)
	}
	return w.Flush()
}

func listRecords(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	metas, err := st.List()
	if err != nil {
		return err
	}
	if len(metas) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no saved results")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDOMAIN\tLABEL\tSAVED\tINPUTS")
	for _, m := range metas {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			m.ID[:min(8, len(m.ID))],
			m.Domain,
			m.Label,
			humanize.Time(m.CreatedAt),
			inputText(m.Inputs),
		)
	}
	return w.Flush()
}

func inputText(in map[string]float64) string {
	names := make([]string, 0, len(in))
	for n := range in {
		names = append(names, n)
	}
	sort.Strings(names)
	pairs := make([]string, len(names))
	for i, n := range names {
		pairs[i] = fmt.Sprintf("%s=%g", n, in[n])
	}
	return strings.Join(pairs, " ")
}

func loadRecord(ref string) (storage.Record, error) {
	st, err := openStore()
	if err != nil {
		return storage.Record{}, err
	}
	defer st.Close()
	return storage.Find(st, ref)
}

func showRecord(cmd *cobra.Command, args []string) error {
	rec, err := loadRecord(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "id:      %s\n", rec.ID)
	fmt.Fprintf(out, "domain:  %s\n", rec.Domain)
	if rec.Label != "" {
		fmt.Fprintf(out, "label:   %s\n", rec.Label)
	}
	fmt.Fprintf(out, "saved:   %s (%s)\n", rec.CreatedAt.Local().Format("2006-01-02 15:04:05"), humanize.Time(rec.CreatedAt))
	fmt.Fprintf(out, "inputs:  %s\n\n", inputText(rec.Inputs))
	printSummary(out, string(rec.Domain), rec.Summary)

	if len(rec.Metrics) > 0 {
		fmt.Fprintln(out, "\nmetrics:")
		keys := make([]string, 0, len(rec.Metrics))
		for k := range rec.Metrics {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "  %s: %.6g\n", k, rec.Metrics[k])
		}
	}
	return nil
}

func deleteRecord(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	rec, err := storage.Find(st, args[0])
	if err != nil {
		return err
	}
	if err := st.Delete(rec.ID); err != nil {
		return err
	}
	log.Info("deleted result", zap.String("id", rec.ID))
	return nil
}

// emit writes the rendered export to --out, or to stdout when unset.
func emit(cmd *cobra.Command, render func(w io.Writer) error) error {
	if outPath == "" {
		return render(cmd.OutOrStdout())
	}
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s to %s\n", humanize.Bytes(uint64(buf.Len())), outPath)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	rec, err := loadRecord(args[0])
	if err != nil {
		return err
	}
	return emit(cmd, func(w io.Writer) error {
		return export.WriteJSON(w, export.FromRecord(rec))
	})
}

func exportCSV(cmd *cobra.Command, args []string) error {
	rec, err := loadRecord(args[0])
	if err != nil {
		return err
	}
	if curveName == "" {
		return emit(cmd, func(w io.Writer) error {
			return export.WriteScalarsCSV(w, rec.Summary.Scalars)
		})
	}
	if s, ok := rec.Summary.Curve(curveName); ok {
		return emit(cmd, func(w io.Writer) error {
			return export.WriteSeriesCSV(w, s)
		})
	}
	for _, p := range rec.Summary.Paths {
		if p.Name == curveName {
			return emit(cmd, func(w io.Writer) error {
				return export.WritePathCSV(w, p)
			})
		}
	}
	return fmt.Errorf("no curve or path %q (curves: %s)", curveName, curveNames(rec.Summary))
}

func exportSVG(cmd *cobra.Command, args []string) error {
	rec, err := loadRecord(args[0])
	if err != nil {
		return err
	}
	stroke := string(viz.CurrentTheme.Primary)

	var doc string
	switch {
	case curveName != "":
		s, ok := rec.Summary.Curve(curveName)
		if !ok {
			return fmt.Errorf("no curve %q (available: %s)", curveName, curveNames(rec.Summary))
		}
		doc = export.SeriesToSVG(s, svgWidth, svgHeight, stroke)
	case len(rec.Summary.Paths) == 0:
		return fmt.Errorf("result has no paths; pass --curve (available: %s)", curveNames(rec.Summary))
	case braille:
		canvas := viz.NewCanvas(cfg.Plot.Width, cfg.Plot.Height)
		canvas.DrawPaths(rec.Summary.Paths)
		doc = export.CanvasToSVG(canvas, svgScale, stroke)
	default:
		doc = export.PathsToSVG(rec.Summary.Paths, svgWidth, svgHeight, stroke)
	}
	if doc == "" {
		return fmt.Errorf("nothing to draw")
	}

	return emit(cmd, func(w io.Writer) error {
		_, err := io.WriteString(w, doc)
		return err
	})
}
