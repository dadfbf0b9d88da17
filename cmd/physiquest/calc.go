package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/EEseka/physiquest/internal/config"
	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/export"
	"github.com/EEseka/physiquest/internal/physics"
	"github.com/EEseka/physiquest/internal/quantity"
	"github.com/EEseka/physiquest/internal/storage"
	"github.com/EEseka/physiquest/internal/validate"
	"github.com/EEseka/physiquest/internal/viz"
)

// parseInputs applies name=value pairs over base. A value of "none" or ""
// removes the name.
func parseInputs(base quantity.Set, pairs []string) (quantity.Set, error) {
	in := base
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return quantity.Set{}, fmt.Errorf("input %q: want name=value", pair)
		}
		q, err := quantity.Parse(raw)
		if err != nil {
			return quantity.Set{}, fmt.Errorf("input %s: %w", name, err)
		}
		in = in.With(name, q)
	}
	return in, nil
}

// request resolves a domain argument plus the --preset and --in flags.
func request(arg string) (engine.Domain, quantity.Set, error) {
	d, err := engine.ParseDomain(arg)
	if err != nil {
		return "", quantity.Set{}, err
	}
	base := quantity.NewSet(nil)
	if preset != "" {
		base, err = config.PresetSet(d, preset)
		if err != nil {
			return "", quantity.Set{}, err
		}
	}
	in, err := parseInputs(base, inputs)
	if err != nil {
		return "", quantity.Set{}, err
	}
	return d, in, nil
}

// resolve computes a domain argument or loads a saved record by id.
func resolve(arg string) (string, quantity.Set, engine.Summary, error) {
	if _, err := engine.ParseDomain(arg); err == nil {
		d, in, err := request(arg)
		if err != nil {
			return "", quantity.Set{}, engine.Summary{}, err
		}
		sum, err := physics.Compute(d, in)
		return string(d), in, sum, err
	}

	st, err := openStore()
	if err != nil {
		return "", quantity.Set{}, engine.Summary{}, err
	}
	defer st.Close()

	rec, err := storage.Find(st, arg)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", quantity.Set{}, engine.Summary{}, fmt.Errorf("%q is neither a domain nor a saved result: %w", arg, err)
		}
		return "", quantity.Set{}, engine.Summary{}, err
	}
	title := rec.Label
	if title == "" {
		title = rec.ID[:min(8, len(rec.ID))]
	}
	return title, quantity.Values(rec.Inputs), rec.Summary, nil
}

func listDomains(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DOMAIN\tTITLE\tREQUIRES\tINPUTS")
	for _, e := range physics.Entries() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Domain, e.Title, e.Rule().Describe(), strings.Join(e.Inputs(), ", "))
	}
	return w.Flush()
}

func calc(cmd *cobra.Command, args []string) error {
	d, in, err := request(args[0])
	if err != nil {
		return err
	}

	start := time.Now()
	sum, err := physics.Compute(d, in)
	if err != nil {
		return explain(err)
	}
	log.Debug("computed", zap.String("domain", string(d)), zap.Duration("elapsed", time.Since(start)))

	out := cmd.OutOrStdout()
	if asJSON {
		if err := export.WriteJSON(out, export.FromSummary(in.Map(), sum)); err != nil {
			return err
		}
	} else {
		printSummary(out, string(d), sum)
	}

	if !save {
		return nil
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	meta, err := st.Save(storage.NewRecord(label, in, sum))
	if err != nil {
		return err
	}
	log.Info("saved result", zap.String("id", meta.ID), zap.String("domain", string(d)))
	if !asJSON {
		fmt.Fprintf(out, "\nsaved: %s\n", meta.ID)
	}
	return nil
}

// explain adds the offending quantities to validation errors.
func explain(err error) error {
	var verr *validate.Error
	if errors.As(err, &verr) && len(verr.Violations) > 0 {
		lines := make([]string, len(verr.Violations))
		for i, v := range verr.Violations {
			lines[i] = "  " + v.String()
		}
		return fmt.Errorf("%w\n%s", err, strings.Join(lines, "\n"))
	}
	return err
}

func printSummary(w io.Writer, title string, sum engine.Summary) {
	fmt.Fprintln(w, viz.Title(title))
	fmt.Fprintln(w, viz.ResultTable(sum))
	if len(sum.Curves)+len(sum.Paths) > 0 {
		fmt.Fprintln(w, viz.CurveTable(sum))
	}
}

func plot(cmd *cobra.Command, args []string) error {
	title, _, sum, err := resolve(args[0])
	if err != nil {
		return explain(err)
	}
	out := cmd.OutOrStdout()
	width, height := cfg.Plot.Width, cfg.Plot.Height

	fmt.Fprintf(out, "%s (%s)\n\n", viz.Title(title), sum.Domain)

	if showPaths || (len(sum.Curves) == 0 && len(sum.Paths) > 0) {
		if len(sum.Paths) == 0 {
			return fmt.Errorf("no paths for these inputs")
		}
		canvas := viz.NewCanvas(width, height)
		canvas.DrawPaths(sum.Paths)
		fmt.Fprint(out, canvas.String())
		return nil
	}

	if curveName != "" {
		s, ok := sum.Curve(curveName)
		if !ok {
			return fmt.Errorf("no curve %q (available: %s)", curveName, curveNames(sum))
		}
		fmt.Fprintln(out, viz.Plot(s, width, height))
		return nil
	}
	if len(sum.Curves) == 0 {
		return fmt.Errorf("no curves for these inputs")
	}
	if overlay {
		fmt.Fprintln(out, viz.PlotMany(sum.Curves, width, height))
		return nil
	}
	for _, s := range sum.Curves {
		fmt.Fprintln(out, viz.Plot(s, width, height))
	}
	return nil
}

func curveNames(sum engine.Summary) string {
	names := make([]string, len(sum.Curves))
	for i, s := range sum.Curves {
		names[i] = s.Name
	}
	return strings.Join(names, ", ")
}

func view(cmd *cobra.Command, args []string) error {
	title, _, sum, err := resolve(args[0])
	if err != nil {
		return explain(err)
	}
	p := tea.NewProgram(viz.NewViewer(title, sum, cfg.Plot.Width, cfg.Plot.Height*2), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	domains := engine.Domains
	if len(args) == 1 {
		d, err := engine.ParseDomain(args[0])
		if err != nil {
			return err
		}
		domains = []engine.Domain{d}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DOMAIN\tPRESET\tINPUTS")
	for _, d := range domains {
		for _, name := range config.ListPresets(d) {
			in := quantity.Values(config.GetPreset(d, name))
			pairs := make([]string, 0, in.Len())
			for _, n := range in.Names() {
				pairs = append(pairs, n+"="+in.Get(n).String())
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", d, name, strings.Join(pairs, " "))
		}
	}
	return w.Flush()
}

func bench(cmd *cobra.Command, args []string) error {
	d, in, err := request(args[0])
	if err != nil {
		return err
	}
	if in.Len() == 0 {
		names := config.ListPresets(d)
		if len(names) == 0 {
			return fmt.Errorf("no inputs and no presets for %s", d)
		}
		in, _ = config.PresetSet(d, names[0])
	}
	if _, err := physics.Compute(d, in); err != nil {
		return explain(err)
	}
	if benchIters < 1 {
		return fmt.Errorf("iterations must be positive")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "benchmarking %s\n\n", d)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WORKERS\tCALLS\tTIME\tPER CALL\tCALLS/SEC")

	for _, n := range []int{1, cfg.Workers} {
		start := time.Now()
		outcomes, err := engine.Batch(context.Background(), n, benchIters, func(int) (engine.Summary, error) {
			return physics.Compute(d, in)
		})
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		for _, o := range outcomes {
			if o.Err != nil {
				return o.Err
			}
		}

		perSec := float64(benchIters) / elapsed.Seconds()
		fmt.Fprintf(w, "%d\t%s\t%v\t%v\t%s\n",
			n, humanize.Comma(int64(benchIters)), elapsed.Round(time.Microsecond),
			(elapsed / time.Duration(benchIters)).Round(time.Nanosecond),
			humanize.Comma(int64(perSec)))
		if cfg.Workers == 1 {
			break
		}
	}
	return w.Flush()
}
