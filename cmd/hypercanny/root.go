// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ndcanny/canny"
	"github.com/katalvlaran/ndcanny/flood"
	"github.com/katalvlaran/ndcanny/internal/logging"
	"github.com/katalvlaran/ndcanny/ndarray"
	"github.com/katalvlaran/ndcanny/ndio"
	"github.com/katalvlaran/ndcanny/raster"
)

const (
	flagFile    = "file"
	flagVar     = "var"
	flagSigma   = "sigma"
	flagLower   = "lower"
	flagUpper   = "upper"
	flagWorkers = "workers"
	flagAxial   = "axial"
)

// detectEnv holds the flags of the root command.
type detectEnv struct {
	file       string
	variable   string
	configPath string
	pngOut     string
	bmpOut     string
	npzOut     string
	palette    string
	sigma      float64
	lower      float64
	upper      float64
	scale      int
	workers    int
	axial      bool
	colour     bool
	debug      bool

	log logging.Logger
}

func newRootCmd() *cobra.Command {
	env := &detectEnv{}
	cmd := &cobra.Command{
		Use:   "hypercanny",
		Short: "Edge detection, any way you like",
		Long: `
Reads one variable from a .npy or .npz file, runs Gaussian smoothing,
the Sobel operator, edge thinning and hysteresis thresholding over all of
its dimensions, and prints the edge mask with rows along axis 1.
`,
		Args: cobra.NoArgs,
		RunE: env.runDetect,
	}

	f := cmd.Flags()
	f.StringVarP(&env.file, flagFile, "f", "", "input .npy or .npz file")
	f.StringVar(&env.variable, flagVar, "", "variable to read (default \"data\", else the first one)")
	f.Float64Var(&env.sigma, flagSigma, canny.DefaultSigma, "pre smoothing width, 0 disables smoothing")
	f.Float64Var(&env.lower, flagLower, canny.DefaultLower, "lower (definite edge) score threshold")
	f.Float64Var(&env.upper, flagUpper, canny.DefaultUpper, "upper (possible edge) score threshold")
	f.StringVar(&env.configPath, "config", "", "YAML file with pipeline settings; flags override it")
	f.StringVar(&env.pngOut, "png", "", "write the input with edges overlaid as PNG")
	f.StringVar(&env.bmpOut, "bmp", "", "write the input with edges overlaid as BMP")
	f.StringVar(&env.npzOut, "npz", "", "write edges, candidates and scores to a .npz archive")
	f.StringVar(&env.palette, "palette", "rainbow", "image palette: "+strings.Join(raster.PaletteNames(), ", "))
	f.IntVar(&env.scale, "scale", 1, "image upscaling factor")
	f.IntVar(&env.workers, flagWorkers, canny.DefaultWorkers, "worker goroutines, 0 for all CPUs")
	f.BoolVar(&env.axial, flagAxial, false, "connect edges along axes only")
	f.BoolVar(&env.colour, "color", false, "highlight edge cells")
	f.BoolVar(&env.debug, "debug", false, "log stage timing")
	must(cmd.MarkFlagRequired(flagFile))

	cmd.AddCommand(newInspectCmd())
	return cmd
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func (e *detectEnv) runDetect(cmd *cobra.Command, _ []string) error {
	opts, err := e.options(cmd)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true
	e.log.Infof("hypercanny: reading %s", e.file)
	a, err := ndio.Open(e.file, ndio.WithLogger(e.log))
	if err != nil {
		return err
	}
	defer a.Close()
	name := e.variable
	if name == "" {
		name = pickVariable(a.Names())
	}
	e.log.Infof("hypercanny: found variables %s, reading %s", strings.Join(a.Names(), ", "), name)
	data, err := ndio.Read[float64](a, name)
	if err != nil {
		return err
	}

	res, err := canny.Detect(data, opts...)
	if err != nil {
		return err
	}
	comps, err := res.Components()
	if err != nil {
		return err
	}
	e.log.Infof("hypercanny: %d edge cells in %d chains", res.Count(), len(comps))

	if err := e.printMask(cmd.OutOrStdout(), res.Edges); err != nil {
		return err
	}
	return e.writeOutputs(data, res)
}

// options resolves config file values, then explicitly set flags.
func (e *detectEnv) options(cmd *cobra.Command) ([]canny.Option, error) {
	e.log = logging.New(cmd.ErrOrStderr(), e.debug)
	cfg := canny.DefaultConfig()
	if e.configPath != "" {
		var err error
		if cfg, err = canny.LoadConfig(e.configPath); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed(flagSigma) {
		cfg.Sigma = e.sigma
	}
	if flags.Changed(flagLower) {
		cfg.Lower = e.lower
	}
	if flags.Changed(flagUpper) {
		cfg.Upper = e.upper
	}
	if flags.Changed(flagWorkers) {
		cfg.Workers = e.workers
	}
	if flags.Changed(flagAxial) {
		cfg.Connectivity = flood.Full.String()
		if e.axial {
			cfg.Connectivity = flood.Axial.String()
		}
	}
	if e.scale < 1 {
		return nil, fmt.Errorf("hypercanny: --scale %d must be >= 1", e.scale)
	}
	if _, err := raster.PaletteByName(e.palette); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return append(cfg.Options(), canny.WithLogger(e.log)), nil
}

func pickVariable(names []string) string {
	for _, n := range names {
		if n == ndio.DefaultVariable {
			return n
		}
	}
	if len(names) > 0 {
		return names[0]
	}
	return ndio.DefaultVariable
}

// printMask writes 2-D slices of mask with rows along axis 1 and columns
// along axis 0. Higher axes get one block per index, headed by it.
func (e *detectEnv) printMask(w io.Writer, mask *ndarray.Array[bool]) error {
	on := "1"
	if e.colour {
		c := color.New(color.FgGreen, color.Bold)
		c.EnableColor()
		on = c.Sprint("1")
	}
	shape := mask.Shape()
	if shape.Rank() < 2 {
		mask = ndarray.Must(mask.Reshape(shape.Size(), 1))
		shape = mask.Shape()
	}
	outer := shape[2:]
	idx := make([]int, outer.Rank())
	for block := 0; block < outer.Size(); block++ {
		outer.Unravel(block, idx)
		plane := mask
		for axis := len(idx) - 1; axis >= 0; axis-- {
			plane = plane.Select(axis+2, idx[axis])
		}
		if outer.Rank() > 0 {
			if _, err := fmt.Fprintf(w, "# %v\n", idx); err != nil {
				return err
			}
		}
		var sb strings.Builder
		for y := 0; y < shape[1]; y++ {
			sb.Reset()
			for x := 0; x < shape[0]; x++ {
				if x > 0 {
					sb.WriteByte(' ')
				}
				if v, _ := plane.At(x, y); v {
					sb.WriteString(on)
				} else {
					sb.WriteByte('0')
				}
			}
			sb.WriteByte('\n')
			if _, err := io.WriteString(w, sb.String()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *detectEnv) writeOutputs(data *ndarray.Array[float64], res *canny.Result[float64]) error {
	if e.pngOut != "" || e.bmpOut != "" {
		img, err := e.overlay(data, res.Edges)
		if err != nil {
			return err
		}
		if err := writeFile(e.pngOut, func(w io.Writer) error { return raster.WritePNG(w, img) }); err != nil {
			return err
		}
		if err := writeFile(e.bmpOut, func(w io.Writer) error { return raster.WriteBMP(w, img) }); err != nil {
			return err
		}
	}
	if e.npzOut == "" {
		return nil
	}
	w, err := ndio.Create(e.npzOut, ndio.WithLogger(e.log))
	if err != nil {
		return err
	}
	if err := ndio.WriteMask(w, "edges", res.Edges); err != nil {
		w.Close()
		return err
	}
	if err := ndio.WriteMask(w, "candidates", res.Candidates); err != nil {
		w.Close()
		return err
	}
	if err := ndio.Write(w, "score", res.Field.Score().Copy()); err != nil {
		w.Close()
		return err
	}
	e.log.Infof("hypercanny: wrote %s", e.npzOut)
	return w.Close()
}

func (e *detectEnv) overlay(data *ndarray.Array[float64], edges *ndarray.Array[bool]) (image.Image, error) {
	p, err := raster.PaletteByName(e.palette)
	if err != nil {
		return nil, err
	}
	scale := raster.WithScale(e.scale)
	img, err := raster.Render(data, p, scale)
	if err != nil {
		return nil, err
	}
	if err := raster.Overlay(img, edges, raster.Gray(1), scale); err != nil {
		return nil, err
	}
	return img, nil
}

// writeFile creates path and runs write on it; an empty path is skipped.
func writeFile(path string, write func(io.Writer) error) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
