// Command rectigrid reads a rectilinear polygon, one "x,y" vertex per line, and
// prints the area of the largest rectangle whose opposite corners are vertices.
//
// Usage:
//
//	rectigrid [flags] <file>
//
// Flags default from RECTIGRID_MODE, RECTIGRID_RULE and RECTIGRID_FIXED_POINT,
// which may be set in a .env file in the working directory. LOG_LEVEL and
// LOG_FORMAT control diagnostics on stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/rectigrid"
	"github.com/katalvlaran/rectigrid/classify"
	"github.com/katalvlaran/rectigrid/lattice"
	"github.com/katalvlaran/rectigrid/render"
	"github.com/katalvlaran/rectigrid/solve"
	"github.com/katalvlaran/rectigrid/vertexio"
)

func main() {
	_ = godotenv.Load(".env")
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	path       string
	mode       solve.Mode
	rule       classify.Rule
	fixedPoint bool
	ascii      bool
	png        string
	scale      int
	stats      bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("rectigrid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		mode       = fs.String("mode", envOr("RECTIGRID_MODE", "interior"), "rectangle mode: interior|any")
		rule       = fs.String("rule", envOr("RECTIGRID_RULE", "parity"), "classification rule: parity|facing")
		fixedPoint = fs.Bool("fixed-point", envBool("RECTIGRID_FIXED_POINT"), "repeat neighbor propagation until stable")
		ascii      = fs.Bool("ascii", false, "print the classified lattice")
		png        = fs.String("png", "", "write the classified lattice to this PNG file")
		scale      = fs.Int("scale", 8, "PNG pixels per cell")
		stats      = fs.Bool("stats", false, "print classification statistics")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, errors.New("expected exactly one input file")
	}

	cfg := &config{path: fs.Arg(0), fixedPoint: *fixedPoint, ascii: *ascii, png: *png, scale: *scale, stats: *stats}
	var err error
	if cfg.mode, err = solve.ParseMode(*mode); err != nil {
		return nil, err
	}
	if cfg.rule, err = classify.ParseRule(*rule); err != nil {
		return nil, err
	}

	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	rectigrid.SetLogger(newLogger(stderr))
	log := rectigrid.Logger()

	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, "rectigrid:", err)
		}
		return 2
	}

	vs, skipped, err := vertexio.ReadFile(cfg.path)
	if err != nil {
		fmt.Fprintln(stderr, "rectigrid:", err)
		return 1
	}
	if len(vs) == 0 {
		log.Warn("empty polygon", "path", cfg.path, "err", vertexio.ErrNoVertices)
	}

	opts := solve.DefaultOptions()
	opts.Mode, opts.Rule = cfg.mode, cfg.rule
	if cfg.fixedPoint {
		opts.Propagation = classify.FixedPoint
	}
	res, err := solve.Run(vs, opts)
	if err != nil {
		fmt.Fprintln(stderr, "rectigrid:", err)
		return 1
	}

	if res.Lattice == nil && (cfg.ascii || cfg.png != "") {
		log.Warn("nothing to draw in any-pair mode")
	}
	if cfg.ascii && res.Lattice != nil {
		fmt.Fprint(stdout, render.ASCII(res.Lattice, 1))
	}
	if cfg.png != "" && res.Lattice != nil {
		if err = savePNG(cfg, res); err != nil {
			fmt.Fprintln(stderr, "rectigrid:", err)
			return 1
		}
		log.Info("wrote image", "path", cfg.png)
	}
	if cfg.stats {
		writeStats(stdout, len(vs), len(skipped), res)
	}

	fmt.Fprintf(stdout, "Max area: %d\n", res.Area)
	return 0
}

func savePNG(cfg *config, res *solve.Result) error {
	iopts := render.DefaultImageOptions()
	iopts.Scale = cfg.scale
	if res.Best.Found {
		iopts.Highlight = &lattice.Rect{
			Min: lattice.Pt(min(res.Best.A.X, res.Best.B.X), min(res.Best.A.Y, res.Best.B.Y)),
			Max: lattice.Pt(max(res.Best.A.X, res.Best.B.X), max(res.Best.A.Y, res.Best.B.Y)),
		}
	}
	img, err := render.Image(res.Lattice, iopts)
	if err != nil {
		return err
	}
	return render.SavePNG(cfg.png, img)
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && b
}
