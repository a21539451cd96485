package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ncobase/catalog/client"
)

// sample name fragments; combinations keep the seeded names distinct and
// give the name ordering something non-trivial to sort.
var (
	seedAdjectives = []string{"Aged", "Bright", "Coarse", "Dusty", "Elegant", "Faded", "Glazed", "Heavy", "Iron", "Jade"}
	seedNouns      = []string{"Anvil", "Beaker", "Compass", "Drum", "Easel", "Flask", "Gauge", "Hammer", "Ingot", "Jar"}
)

// NewSeedCommand creates the seed command, which loads test data through
// the public API.
func NewSeedCommand() *cobra.Command {
	var (
		addr  string
		count int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the catalog with test items via the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, addr, count)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "http://localhost:8080", "base URL of a running catalog server")
	cmd.Flags().IntVar(&count, "count", 25, "number of items to create")
	return cmd
}

func runSeed(cmd *cobra.Command, addr string, count int) error {
	c := client.New(addr)
	ctx := cmd.Context()

	for i := 0; i < count; i++ {
		name := fmt.Sprintf("%s %s %02d",
			seedAdjectives[i%len(seedAdjectives)],
			seedNouns[(i/len(seedAdjectives))%len(seedNouns)],
			i+1)

		it, err := c.Create(ctx, client.ItemRequest{
			Name:        name,
			Description: fmt.Sprintf("Seeded test item %d of %d", i+1, count),
		})
		if err != nil {
			return fmt.Errorf("failed to seed item %d: %w", i+1, err)
		}
		cmd.Printf("created item %d: %s\n", it.ID, it.Name)
	}

	cmd.Printf("seeded %d items\n", count)
	return nil
}
