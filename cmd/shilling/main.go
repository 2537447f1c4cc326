package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/BanaanKiamanesh/Shilling/internal/config"
	"github.com/BanaanKiamanesh/Shilling/internal/ode"
	"github.com/BanaanKiamanesh/Shilling/internal/problems"
	"github.com/BanaanKiamanesh/Shilling/internal/rk"
	"github.com/BanaanKiamanesh/Shilling/internal/store"
	"github.com/BanaanKiamanesh/Shilling/internal/tableau"
	"github.com/BanaanKiamanesh/Shilling/internal/viz"
)

var (
	method     string
	dt         float64
	t0, tf     float64
	initState  []float64
	exportPath string
	csvPath    string
	plotRun    bool
	configFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shilling",
		Short: "fixed-step explicit Runge-Kutta integration lab",
	}

	runCmd := &cobra.Command{
		Use:   "run [problem]",
		Short: "integrate a problem with a catalogued method",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runIntegration,
	}
	runCmd.Flags().StringVar(&method, "method", "rk4", "method name (see `methods`)")
	runCmd.Flags().Float64Var(&dt, "dt", ode.DefaultStep, "step size")
	runCmd.Flags().Float64Var(&t0, "t0", 0, "start time")
	runCmd.Flags().Float64Var(&tf, "tf", 10.0, "horizon")
	runCmd.Flags().Float64SliceVar(&initState, "y0", nil, "initial state (defaults to the problem's)")
	runCmd.Flags().StringVar(&exportPath, "export", "", "write run JSON to path")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "write samples CSV to path")
	runCmd.Flags().BoolVar(&plotRun, "plot", false, "plot state components")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	methodsCmd := &cobra.Command{
		Use:   "methods",
		Short: "list the method catalogue",
		RunE:  listMethods,
	}

	liveCmd := &cobra.Command{
		Use:   "live [problem]",
		Short: "integrate with a live terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&method, "method", "rk4", "method name")
	liveCmd.Flags().Float64Var(&dt, "dt", ode.DefaultStep, "step size")
	liveCmd.Flags().Float64SliceVar(&initState, "y0", nil, "initial state")

	benchCmd := &cobra.Command{
		Use:   "bench [problem]",
		Short: "time every catalogued method on one problem",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchMethods,
	}
	benchCmd.Flags().Float64Var(&dt, "dt", 0.001, "step size")
	benchCmd.Flags().Float64Var(&tf, "tf", 10.0, "horizon")

	rootCmd.AddCommand(runCmd, methodsCmd, liveCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// resolveRun merges config file, flags and problem defaults.
func resolveRun(args []string) (*config.Config, problems.Defaulter, *tableau.Tableau, ode.State, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		cfg = loaded
	} else {
		cfg.Method = method
		cfg.Dt = dt
		cfg.T0 = t0
		cfg.Tf = tf
		cfg.InitState = initState
	}
	if len(args) > 0 {
		cfg.Problem = args[0]
	}

	prob, err := problems.Get(cfg.Problem)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	tb, err := tableau.Get(cfg.Method)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	y0 := ode.State(cfg.InitState)
	if len(y0) == 0 {
		y0 = prob.DefaultState()
	}
	if len(y0) != prob.Dim() {
		return nil, nil, nil, nil, fmt.Errorf("initial state has dimension %d, problem %q needs %d", len(y0), cfg.Problem, prob.Dim())
	}
	return cfg, prob, tb, y0, nil
}

func runIntegration(cmd *cobra.Command, args []string) error {
	cfg, prob, tb, y0, err := resolveRun(args)
	if err != nil {
		return err
	}

	start := time.Now()
	traj, err := rk.IntegrateSystem(context.Background(), tb, prob, cfg.T0, cfg.Tf, y0, cfg.Dt)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	tFinal, yFinal := traj.Final()
	fmt.Printf("%s / %s: %d samples in %v\n", cfg.Problem, tb.Name, traj.Len(), elapsed)
	fmt.Printf("final t=%.6g y=%.6g\n", tFinal, []float64(yFinal))

	if plotRun {
		comps := make([]int, prob.Dim())
		for j := range comps {
			comps[j] = j
		}
		fmt.Println(viz.Plot(traj, comps))
	}

	meta := store.RunMeta{
		Problem: cfg.Problem,
		Method:  tb.Name,
		Order:   tb.Order,
		Stages:  tb.Stages,
		Dt:      cfg.Dt,
		T0:      cfg.T0,
		Tf:      cfg.Tf,
	}
	if exportPath != "" {
		if err := store.ExportJSON(exportPath, meta, traj); err != nil {
			return err
		}
		fmt.Println("wrote", exportPath)
	}
	if csvPath != "" {
		if err := store.ExportCSV(csvPath, traj); err != nil {
			return err
		}
		fmt.Println("wrote", csvPath)
	}
	return nil
}

func listMethods(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tORDER\tSTAGES\tREGISTERS\tSTORAGE\tCFL")
	for _, name := range tableau.Names() {
		tb, _ := tableau.Get(name)
		cfl := "-"
		if tb.CFL > 0 {
			cfl = fmt.Sprintf("%g", tb.CFL)
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%s\n",
			tb.Name, tb.Order, tb.Stages, tb.Registers, tb.Storage, cfl)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, prob, tb, y0, err := resolveRun(args)
	if err != nil {
		return err
	}
	return viz.RunLive(tb, prob.Derive, cfg.Problem, y0, cfg.Dt)
}

func benchMethods(cmd *cobra.Command, args []string) error {
	probName := "oscillator"
	if len(args) > 0 {
		probName = args[0]
	}
	prob, err := problems.Get(probName)
	if err != nil {
		return err
	}
	y0 := prob.DefaultState()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tORDER\tSTAGES\tELAPSED\tSAMPLES")
	for _, name := range tableau.Names() {
		tb, _ := tableau.Get(name)
		start := time.Now()
		traj, err := rk.IntegrateSystem(context.Background(), tb, prob, 0, tf, y0, dt)
		if err != nil {
			fmt.Fprintf(w, "%s\t%d\t%d\t%v\t-\n", tb.Name, tb.Order, tb.Stages, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%v\t%d\n", tb.Name, tb.Order, tb.Stages, time.Since(start), traj.Len())
	}
	return w.Flush()
}
