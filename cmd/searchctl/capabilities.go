package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/damedic/azsearch-toolbox-go/model/gen/management"
)

func (c *cli) capabilitiesCmd() *cobra.Command {
	var locations []string

	cmd := &cobra.Command{
		Use:   "capabilities --location LOCATION [--location LOCATION ...]",
		Short: "Show the capabilities of one or more locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.managementClient()
			if err != nil {
				return err
			}

			results := make([]management.Capability, len(locations))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, location := range locations {
				g.Go(func() error {
					capability, err := client.Capabilities(ctx, location)
					if err != nil {
						return err
					}
					results[i] = capability
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			if c.v.GetString("output") != "table" {
				if len(results) == 1 {
					return c.printStructured(results[0])
				}
				return c.printStructured(modelList[management.Capability](results))
			}

			var rows [][]string
			for i, capability := range results {
				rows = appendCapabilityRows(rows, locations[i], capability)
			}
			return c.printTable([]string{"capability", "status", "reason"}, rows)
		},
	}
	cmd.Flags().StringArrayVarP(&locations, "location", "l", nil, "Location to query, repeatable")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}

// appendCapabilityRows flattens the capability tree depth first, joining nested names with "/".
func appendCapabilityRows(rows [][]string, path string, capability management.Capability) [][]string {
	families, _ := capability.SupportedFamilies()
	for _, family := range families {
		name, _ := family.Name()
		familyPath := path + "/" + name
		status, hasStatus := family.Status()
		reason, hasReason := family.Reason()
		rows = append(rows, []string{
			familyPath,
			optional(status, hasStatus),
			optional(reason, hasReason),
		})
		rows = appendCapabilityRows(rows, familyPath, family)
	}
	return rows
}
