package commands

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agiangrant/tailcss"
)

type buildFlags struct {
	output string
	pretty bool
	strict bool
	jobs   int
}

func (f *buildFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "-", "Output CSS file (- for stdout)")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "Write indented CSS instead of minified")
	cmd.Flags().BoolVar(&f.strict, "strict", true, "Use the strict candidate lexer")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "Concurrent workers")
}

// apply lets flags given on the command line override the configuration.
func (f *buildFlags) apply(cmd *cobra.Command, e *env) {
	if cmd.Flags().Changed("pretty") {
		e.cfg.Features.Pretty = f.pretty
	}
	if cmd.Flags().Changed("strict") {
		strict := f.strict
		e.cfg.Features.StrictMode = &strict
	}
}

func newBuildCmd(root *rootFlags) *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Scan content and write the CSS once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(root, false)
			if err != nil {
				return err
			}
			defer e.log.Sync() //nolint:errcheck

			flags.apply(cmd, e)
			g, err := e.generator(flags.jobs)
			if err != nil {
				return err
			}

			start := time.Now()
			css, err := g.Generate(cmd.Context())
			if err != nil {
				return err
			}
			written, err := writeOutput(cmd.OutOrStdout(), flags.output, css)
			if err != nil {
				return err
			}
			report(cmd.ErrOrStderr(), g, flags.output, css, written, time.Since(start))
			logUnmatched(e.log, g)
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func report(w io.Writer, g *tailcss.Generator, output, css string, written bool, took time.Duration) {
	if output == "" || output == "-" {
		return
	}
	st := g.Stats()
	state := "wrote"
	if !written {
		state = "unchanged"
	}
	fmt.Fprintf(w, "✓ %s %s (%s, %d utilities, %d unmatched) in %s\n",
		state, output, humanize.Bytes(uint64(len(css))), st.Matched, st.Unmatched, took.Round(time.Millisecond))
}

func logUnmatched(log *zap.Logger, g *tailcss.Generator) {
	if ce := log.Check(zap.DebugLevel, "Unmatched candidates"); ce != nil {
		var names []string
		for _, d := range g.Unmatched() {
			names = append(names, d.Candidate+" ("+string(d.Kind)+")")
		}
		ce.Write(zap.String("candidates", strings.Join(names, ", ")))
	}
}
