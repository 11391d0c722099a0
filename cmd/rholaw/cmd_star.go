package main

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/rholaw/builder"
	"github.com/spf13/cobra"
)

// starRow is one line of the star–plunder sweep.
type starRow struct {
	P         float64 `json:"p"`
	Authority float64 `json:"authority"`
	Diversity float64 `json:"diversity"`
	Rho       float64 `json:"rho"`
	Band      string  `json:"band"`
	Critical  bool    `json:"critical"`
}

func newStarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "star",
		Short: "Score the star–plunder graph over a sweep of plunder values",
		Long: `Builds the n-node star–plunder influence matrix for every p in the
sweep and prints authority, diversity, rho and band for each.

Column authority (the default) compares column totals, which the
star–plunder matrix keeps equal; use --axis rows to compare row totals,
where the hub's tribute shows up.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			n, _ := cmd.Flags().GetInt("n")
			ps, _ := cmd.Flags().GetFloat64Slice("p")

			ev, err := e.cfg.NewEvaluator()
			if err != nil {
				return err
			}
			bander, err := e.cfg.NewBander()
			if err != nil {
				return err
			}

			rows := make([]starRow, 0, len(ps))
			for _, p := range ps {
				W, err := builder.StarPlunder(n, p)
				if err != nil {
					return err
				}
				res, err := ev.Evaluate(W)
				if err != nil {
					return err
				}
				rows = append(rows, starRow{
					P:         p,
					Authority: res.A,
					Diversity: res.D,
					Rho:       res.Rho,
					Band:      bander.Classify(res.Rho).String(),
					Critical:  ev.Exceeds(res),
				})
				e.log.Debug("star", "n", n, "p", p, "result", res.String())
			}

			if e.jsonOut {
				return json.NewEncoder(e.out).Encode(map[string]interface{}{
					"n":    n,
					"axis": ev.Axis().String(),
					"rows": rows,
				})
			}

			fmt.Fprintf(e.out, "star–plunder n=%d axis=%s\n", n, ev.Axis())
			fmt.Fprintf(e.out, "%-6s  %-8s  %-8s  %-8s  %s\n", "p", "A", "D", "rho", "band")
			for _, r := range rows {
				mark := ""
				if r.Critical {
					mark = "  *"
				}
				fmt.Fprintf(e.out, "%-6.2f  %-8.4f  %-8.4f  %-8.4f  %s%s\n", r.P, r.Authority, r.Diversity, r.Rho, r.Band, mark)
			}

			return nil
		},
	}

	cmd.Flags().Int("n", 10, "Number of nodes (>= 2)")
	cmd.Flags().Float64Slice("p", append([]float64(nil), builder.DemoPlunderGrid...), "Plunder values in [0,1]")
	cmd.Flags().String("axis", "columns", "Authority axis: columns or rows")

	return cmd
}
