package commands

import (
	"github.com/spf13/cobra"

	"github.com/ncobase/catalog/client"
)

// NewItemsCommand creates the items command, which walks the whole
// catalog with cursor paging and prints each item.
func NewItemsCommand() *cobra.Command {
	var (
		addr     string
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "items",
		Short: "List all catalog items by walking cursor pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(addr)
			ctx := cmd.Context()

			cursor := ""
			for {
				items, next, err := c.Cursor(ctx, cursor, pageSize)
				if err != nil {
					return err
				}
				for _, it := range items {
					cmd.Printf("%d\t%s\t%s\n", it.ID, it.Name, it.Description)
				}
				if next == "" {
					return nil
				}
				cursor = next
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "http://localhost:8080", "base URL of a running catalog server")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "items per cursor page")
	return cmd
}
