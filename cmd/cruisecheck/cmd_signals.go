package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/nvandessel/cruisecheck/internal/signal"
	"github.com/spf13/cobra"
)

func newSignalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signals",
		Short: "List the signals every run starts from",
		Long: `List the pre-seeded signals and their start values.

Signals written by actions (PowerSupply, EngineStart, GearIncreaseOne,
AccPedal, CruiseControlSetButton) are not seeded and read as absent until
written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			defaults := signal.Defaults()

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(defaults)
			}

			for _, name := range slices.Sorted(maps.Keys(defaults)) {
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %d\n", name, defaults[name])
			}
			return nil
		},
	}
}
