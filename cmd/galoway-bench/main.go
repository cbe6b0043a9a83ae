// Command galoway-bench builds a synthetic topology from package gen and
// runs one analytics entry point against it, printing the resulting
// Stats — the single buildable caller exercising every analytics package
// end to end, generalizing the teacher's bag of func-main-less
// examples/*.go demo programs into one flag-driven command.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"github.com/arborcore/galoway/analytics/bfs"
	"github.com/arborcore/galoway/analytics/lcc"
	"github.com/arborcore/galoway/analytics/mcsgd"
	"github.com/arborcore/galoway/analytics/mis"
	"github.com/arborcore/galoway/analytics/sssp"
	"github.com/arborcore/galoway/exec"
	"github.com/arborcore/galoway/gen"
	"github.com/arborcore/galoway/propgraph"
	"github.com/arborcore/galoway/topology"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "galoway-bench:", err)
		os.Exit(1)
	}
}

// config holds every flag value run needs; parsed once in run.
type config struct {
	algo string
	n int
	w, h int
	diag bool
	start uint
	k int
	threads int
	outDir string
	genName string
}

func parseArgs(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("galoway-bench", flag.ContinueOnError)
	fs.StringVar(&cfg.algo, "algo", "bfs", "algorithm to run: bfs|sssp|mis|lcc|mcsgd")
	fs.IntVar(&cfg.n, "n", 64, "primary generator size")
	fs.IntVar(&cfg.w, "w", 0, "grid width (0 uses -n for both dimensions)")
	fs.IntVar(&cfg.h, "h", 0, "grid height (0 uses -n for both dimensions)")
	fs.BoolVar(&cfg.diag, "diag", false, "grid: include diagonal neighbors")
	fs.UintVar(&cfg.start, "start", 0, "bfs/sssp start node id")
	fs.IntVar(&cfg.k, "k", 20, "mcsgd latent dimension")
	fs.IntVar(&cfg.threads, "t", runtime.NumCPU(), "active worker threads")
	fs.StringVar(&cfg.outDir, "o", "", "output directory for the Stats summary (stdout if empty)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		return cfg, err
	}
	if fs.NArg() < 1 {
		return cfg, fmt.Errorf("usage: galoway-bench [flags] <grid|ferriswheel|sawtooth|clique|triangle>")
	}
	cfg.genName = fs.Arg(0)
	return cfg, nil
}

func run(args []string) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}

	b, err := composeTopology(cfg)
	if err != nil {
		return err
	}
	g := propgraph.New(b.Build())

	pool := exec.Default()
	if cfg.threads > 0 {
		pool.SetActiveThreads(cfg.threads)
	}

	stats, err := runAlgorithm(g, cfg)
	if err != nil {
		return err
	}
	return writeOutput(cfg.outDir, cfg.algo, stats)
}

// composeTopology resolves a generator name to its topology.Constructor and
// builds it via topology.Compose, mirroring builder.BuildGraph's
// "one constructor, one error path" composition (builder/builder.go).
func composeTopology(cfg config) (*topology.Builder, error) {
	w, h := cfg.w, cfg.h
	if w <= 0 {
		w = cfg.n
	}
	if h <= 0 {
		h = cfg.n
	}
	var con topology.Constructor
	switch cfg.genName {
	case "grid":
		con = gen.Grid(w, h, cfg.diag)
	case "ferriswheel":
		con = gen.FerrisWheel(cfg.n)
	case "sawtooth":
		con = gen.Sawtooth(cfg.n)
	case "clique":
		con = gen.Clique(cfg.n)
	case "triangle":
		con = gen.Triangle(cfg.n)
	default:
		return nil, fmt.Errorf("unknown generator %q", cfg.genName)
	}
	return topology.Compose(con)
}

// printer is satisfied by every analytics package's Stats type (§6 of the
// external interfaces): a plain fmt.Fprintf summary, no templating.
type printer interface {
	Print(w io.Writer)
}

// runAlgorithm dispatches to the named analytics package, synthesizing
// whatever edge properties that algorithm needs (sssp's weight column,
// mcsgd's rating column) via gen.AddEdgeProperties before running.
func runAlgorithm(g *propgraph.Graph, cfg config) (printer, error) {
	switch cfg.algo {
	case "bfs":
		res := bfs.Run(g, uint32(cfg.start), "dist", bfs.DefaultPlan())
		if !res.IsOk() {
			return nil, fmt.Errorf("bfs: %s", res.Err().Error())
		}
		return res.Value(), nil

	case "sssp":
		if err := gen.AddEdgeProperties(g, "weight", func(uint32) float64 { return 1.0 }); err != nil {
			return nil, fmt.Errorf("sssp: synthesize weight column: %w", err)
		}
		res := sssp.Run[float64](g, uint32(cfg.start), "weight", "dist", math.MaxFloat64, sssp.DefaultPlan())
		if !res.IsOk() {
			return nil, fmt.Errorf("sssp: %s", res.Err().Error())
		}
		return res.Value(), nil

	case "mis":
		res := mis.Run(g, "in_set", mis.DefaultPlan())
		if !res.IsOk() {
			return nil, fmt.Errorf("mis: %s", res.Err().Error())
		}
		return res.Value(), nil

	case "lcc":
		res := lcc.Run(g, "coefficient", lcc.DefaultPlan())
		if !res.IsOk() {
			return nil, fmt.Errorf("lcc: %s", res.Err().Error())
		}
		return res.Value(), nil

	case "mcsgd":
		itemCount := g.NumNodes() / 2
		if itemCount <= 0 {
			return nil, fmt.Errorf("mcsgd: graph too small to split into item/user blocks")
		}
		if err := gen.AddEdgeProperties(g, "rating", func(uint32) float64 { return 3.0 }); err != nil {
			return nil, fmt.Errorf("mcsgd: synthesize rating column: %w", err)
		}
		res := mcsgd.Run(g, "rating", itemCount, "residual", mcsgd.NewPlan(mcsgd.WithK(cfg.k)))
		if !res.IsOk() {
			return nil, fmt.Errorf("mcsgd: %s", res.Err().Error())
		}
		return res.Value(), nil

	default:
		return nil, fmt.Errorf("unknown algorithm %q", cfg.algo)
	}
}

func writeOutput(dir, algo string, stats printer) error {
	if dir == "" {
		stats.Print(os.Stdout)
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("output dir: %w", err)
	}
	path := filepath.Join(dir, algo+".txt")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	stats.Print(f)
	return nil
}
