// Command pipeplan generates a random neighborhood of houses, plans the
// cheapest pipe network connecting them with Prim's algorithm, and draws
// the result.
//
//	pipeplan --vertices 33 --start "Casa 1" --seed 7 --output prim.svg
//
// Every flag may also come from a YAML file given with --config; flags on
// the command line win.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/katalvlaran/pipeplan/internal/logging"
	"github.com/katalvlaran/pipeplan/internal/pipeline"
)

type cli struct {
	Vertices  int             `help:"Number of houses in the generated neighborhood." default:"${vertices}"`
	Start     string          `help:"House the pipe network grows from." default:"${start}"`
	Seed      int64           `help:"Random seed; 0 seeds from the clock." default:"0"`
	Output    string          `help:"Figure path; the extension (.svg, .dot, .gv) selects the format." default:"${output}" short:"o"`
	Title     string          `help:"Figure title." default:"${title}"`
	Trace     bool            `help:"Narrate every step of the algorithm on stdout." default:"true" negatable:""`
	LogLevel  string          `help:"Log level (${enum})." default:"info" enum:"debug,info,warn,error"`
	LogFormat string          `help:"Log encoding (${enum})." default:"console" enum:"console,logfmt,json"`
	Config    kong.ConfigFlag `help:"YAML file providing any of the flags above." short:"c"`
}

func (c cli) pipelineConfig() pipeline.Config {
	return pipeline.Config{
		Vertices: c.Vertices,
		Start:    c.Start,
		Seed:     c.Seed,
		Output:   c.Output,
		Title:    c.Title,
		Trace:    c.Trace,
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var params cli
	exitCode := -1
	parser, err := kong.New(&params,
		kong.Name("pipeplan"),
		kong.Description("Plan the cheapest pipe network for a neighborhood with Prim's algorithm."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			if exitCode < 0 {
				exitCode = code
			}
		}),
		kong.Configuration(yamlLoader),
		kong.Vars{
			"vertices": strconv.Itoa(pipeline.DefaultVertices),
			"start":    pipeline.DefaultStart,
			"output":   pipeline.DefaultOutput,
			"title":    pipeline.DefaultTitle,
		},
	)
	if err != nil {
		fmt.Fprintln(stderr, "pipeplan:", err)
		return 2
	}
	if _, err = parser.Parse(args); err != nil {
		fmt.Fprintln(stderr, "pipeplan:", err)
		return 2
	}
	if exitCode >= 0 {
		// --help already printed usage.
		return exitCode
	}

	logger, err := logging.New(logging.Config{
		Level:  params.LogLevel,
		Format: params.LogFormat,
		Writer: stderr,
	})
	if err != nil {
		fmt.Fprintln(stderr, "pipeplan:", err)
		return 2
	}
	defer logger.Sync() //nolint:errcheck

	cfg := params.pipelineConfig()
	res, err := pipeline.NewRunner(logger, stdout).Run(cfg)
	if err != nil {
		logger.Debug("run failed", zap.Error(err))
		fmt.Fprintln(stderr, "pipeplan:", err)
		return 1
	}

	fmt.Fprintf(stdout, "%d pipes, total cost %d, figure written to %s\n", len(res.Edges), res.Total, cfg.Output)
	if !res.Spanning {
		fmt.Fprintf(stdout, "warning: %d houses are unreachable from %s\n",
			res.Graph.VertexCount()-len(res.Edges)-1, cfg.Start)
	}

	return 0
}
