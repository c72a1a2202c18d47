package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/agiangrant/tailcss/diag"
)

func newCheckCmd(root *rootFlags) *cobra.Command {
	var ast bool

	cmd := &cobra.Command{
		Use:   "check <candidate>...",
		Short: "Show what candidates compile to, or why they don't",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(root, true)
			if err != nil {
				return err
			}
			defer e.log.Sync() //nolint:errcheck

			g, err := e.generator(1)
			if err != nil {
				return err
			}

			r := lipgloss.NewRenderer(cmd.OutOrStdout())
			var (
				ok   = r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
				fail = r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
				name = r.NewStyle().Bold(true)
				dim  = r.NewStyle().Foreground(lipgloss.Color("245"))
				body = r.NewStyle().PaddingLeft(2)
			)

			out := cmd.OutOrStdout()
			failed := 0
			for _, raw := range args {
				ex := g.Explain(raw)
				if ex.Err != nil {
					failed++
					fmt.Fprintf(out, "%s %s %s\n", fail.Render("✗"), name.Render(raw), dim.Render(string(diag.KindOf(ex.Err))))
					fmt.Fprintln(out, body.Render(ex.Err.Error()))
				} else {
					fmt.Fprintf(out, "%s %s\n", ok.Render("✓"), name.Render(raw))
					fmt.Fprintln(out, body.Render(strings.TrimRight(ex.CSS, "\n")))
				}
				if ast && ex.Candidate.Raw != "" {
					data, err := json.MarshalIndent(ex.Candidate, "", "  ")
					if err != nil {
						return err
					}
					fmt.Fprintln(out, body.Render(dim.Render(string(data))))
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d candidates produced no CSS", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&ast, "ast", false, "Also print the parsed candidate")

	return cmd
}
