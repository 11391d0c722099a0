package main

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/katalvlaran/rholaw/band"
	"github.com/spf13/cobra"
)

// bandRow describes one band's interval. Upper is nil for the open top band.
type bandRow struct {
	Band  string   `json:"band"`
	Lower float64  `json:"lower"`
	Upper *float64 `json:"upper"`
}

func newBandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bands",
		Short: "Print the active band scale",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			bander, err := e.cfg.NewBander()
			if err != nil {
				return err
			}

			rows := make([]bandRow, 0, band.Count)
			for k := 0; k < band.Count; k++ {
				b := band.Band(k)
				lo, hi := bander.Range(b)
				row := bandRow{Band: b.String(), Lower: lo}
				if !math.IsInf(hi, 1) {
					row.Upper = &hi
				}
				rows = append(rows, row)
			}

			if e.jsonOut {
				return json.NewEncoder(e.out).Encode(rows)
			}
			for _, r := range rows {
				if r.Upper == nil {
					fmt.Fprintf(e.out, "%-7s rho > %g\n", r.Band, r.Lower)
					continue
				}
				fmt.Fprintf(e.out, "%-7s rho <= %g\n", r.Band, *r.Upper)
			}

			return nil
		},
	}
}
