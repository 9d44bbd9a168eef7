package main

import (
	"fmt"
	"math"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/orbit-lab/newtonian/internal/body"
	"github.com/orbit-lab/newtonian/internal/config"
	"github.com/orbit-lab/newtonian/internal/metrics"
	"github.com/orbit-lab/newtonian/internal/progress"
	"github.com/orbit-lab/newtonian/internal/record"
	"github.com/orbit-lab/newtonian/internal/sim"
	"github.com/orbit-lab/newtonian/internal/tui"
)

var (
	output         string
	totalTime      string
	deltaT         string
	recordInterval string
	gravity        float64
	configFile     string
	quiet          bool
	// Plot selection
	plotBody string
	plotAxis string
	// Frame rate for live view
	frameRate int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "newtonian",
		Short: "batch newtonian n-body simulator",
	}

	runCmd := &cobra.Command{
		Use:   "run [input.json]",
		Short: "run a simulation and record snapshots",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVarP(&output, "output", "o", config.DefaultOutput, "results file (.parquet or .csv)")
	runCmd.Flags().StringVarP(&totalTime, "total-time", "t", config.DefaultTotalTime, "seconds to simulate (expression, e.g. \"60*60*24*365\")")
	runCmd.Flags().StringVarP(&deltaT, "delta-t", "d", config.DefaultDt, "timestep in seconds (expression, e.g. \"1.0/1000.0\")")
	runCmd.Flags().StringVarP(&recordInterval, "record-interval", "r", config.DefaultRecordInterval, "record every N seconds (expression, e.g. \"60*10\")")
	runCmd.Flags().Float64VarP(&gravity, "gravity", "g", 0, "gravitational constant (defaults to the physical value)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")

	plotCmd := &cobra.Command{
		Use:   "plot [results-file]",
		Short: "plot a recorded coordinate series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&plotBody, "body", "", "body name (defaults to the first recorded body)")
	plotCmd.Flags().StringVar(&plotAxis, "axis", "x", "coordinate axis: x, y or z")

	liveCmd := &cobra.Command{
		Use:   "live [input.json]",
		Short: "watch a simulation live in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVarP(&deltaT, "delta-t", "d", "0.01", "timestep in seconds (expression)")
	liveCmd.Flags().Float64VarP(&gravity, "gravity", "g", 0, "gravitational constant (defaults to the physical value)")
	liveCmd.Flags().IntVar(&frameRate, "fps", 60, "frame rate")

	rootCmd.AddCommand(runCmd, plotCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override config file values.
	if cmd.Flags().Changed("output") {
		cfg.Output = output
	}
	if cmd.Flags().Changed("total-time") {
		cfg.TotalTime = totalTime
	}
	if cmd.Flags().Changed("delta-t") {
		cfg.Dt = deltaT
	}
	if cmd.Flags().Changed("record-interval") {
		cfg.RecordInterval = recordInterval
	}
	if cmd.Flags().Changed("gravity") {
		cfg.Gravity = gravity
	}

	runCfg, err := cfg.RunConfig()
	if err != nil {
		return err
	}
	if err := runCfg.Validate(); err != nil {
		return err
	}

	bodies, err := body.LoadFile(args[0])
	if err != nil {
		return err
	}

	rec, err := record.Open(cfg.Output)
	if err != nil {
		return err
	}

	runner := sim.New(rec)

	var bar *progress.Bar
	if !quiet {
		bar = progress.New(runCfg.Steps(), runCfg.RecordSteps(), os.Stderr)
		runner.AddObserver(bar)
	}

	initialEnergy := metrics.TotalEnergy(bodies, runCfg.G)

	runErr := runner.Run(bodies, runCfg)
	if bar != nil {
		bar.Finish()
	}
	if runErr != nil {
		rec.Close()
		return runErr
	}
	if err := rec.Close(); err != nil {
		return err
	}

	steps := runCfg.Steps()
	snapshots := 0
	if steps > 0 {
		snapshots = (steps + runCfg.RecordSteps() - 1) / runCfg.RecordSteps()
	}

	fmt.Printf("simulated %d steps, recorded %d snapshots of %d bodies to %s\n",
		steps, snapshots, len(bodies), cfg.Output)
	if initialEnergy != 0 {
		finalEnergy := metrics.TotalEnergy(bodies, runCfg.G)
		drift := math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
		fmt.Printf("energy drift: %.3e\n", drift)
	}
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	rows, err := record.ReadFile(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s contains no rows", args[0])
	}

	name := plotBody
	if name == "" {
		name = rows[0].Name
	}

	data, err := record.Series(rows, name, plotAxis)
	if err != nil {
		return fmt.Errorf("%w (recorded bodies: %v)", err, record.Names(rows))
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s pos_%s over recorded steps", name, plotAxis)),
	)
	fmt.Println(graph)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	bodies, err := body.LoadFile(args[0])
	if err != nil {
		return err
	}

	dt, err := config.Eval(deltaT)
	if err != nil {
		return err
	}
	if dt <= 0 {
		return sim.ErrNonPositiveDt
	}

	g := gravity
	if !cmd.Flags().Changed("gravity") {
		g = config.DefaultConfig().Gravity
	}
	if g <= 0 {
		return sim.ErrNonPositiveGravity
	}

	return tui.Run(bodies, dt, g, frameRate)
}
