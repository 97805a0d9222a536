package cli

import (
	"os"

	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/mkravec/rota/internal/metrics"
)

func newMetricsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Dump process counters in Prometheus text format",
		RunE: func(cmd *cobra.Command, args []string) error {
			families, err := metrics.Registry.Gather()
			if err != nil {
				return err
			}
			enc := expfmt.NewEncoder(os.Stdout, expfmt.NewFormat(expfmt.TypeTextPlain))
			for _, mf := range families {
				if err := enc.Encode(mf); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
