package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/damedic/azsearch-toolbox-go/model/gen/dataplane"
)

func (c *cli) indexesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "indexes",
		Short: "Manage the indexes of a search service",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all indexes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := c.serviceClient()
				if err != nil {
					return err
				}
				result, err := client.Indexes(cmd.Context())
				if err != nil {
					return err
				}
				if c.v.GetString("output") != "table" {
					return c.printStructured(result)
				}

				indexes, _ := result.Indexes()
				rows := make([][]string, 0, len(indexes))
				for _, index := range indexes {
					fields, _ := index.Fields()
					rows = append(rows, []string{index.Name(), strconv.Itoa(len(fields)), keyField(fields)})
				}
				return c.printTable([]string{"name", "fields", "key"}, rows)
			},
		},
		&cobra.Command{
			Use:   "get NAME",
			Short: "Show the definition of an index",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := c.serviceClient()
				if err != nil {
					return err
				}
				index, err := client.Index(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if c.v.GetString("output") != "table" {
					return c.printStructured(index)
				}

				fields, _ := index.Fields()
				var rows [][]string
				appendFieldRows(&rows, "", fields)
				return c.printTable([]string{"field", "type", "key", "searchable", "analyzer"}, rows)
			},
		},
		&cobra.Command{
			Use:   "stats NAME",
			Short: "Show document count and storage size of an index",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := c.serviceClient()
				if err != nil {
					return err
				}
				stats, err := client.IndexStatistics(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if c.v.GetString("output") != "table" {
					return c.printStructured(stats)
				}

				documents, hasDocuments := stats.DocumentCount()
				storage, hasStorage := stats.StorageSize()
				vector, hasVector := stats.VectorIndexSize()
				return c.printTable(
					[]string{"index", "documents", "storage", "vector index"},
					[][]string{{args[0], optional(documents, hasDocuments), optional(storage, hasStorage), optional(vector, hasVector)}},
				)
			},
		},
		&cobra.Command{
			Use:   "delete NAME",
			Short: "Delete an index",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := c.serviceClient()
				if err != nil {
					return err
				}
				if err := client.DeleteIndex(cmd.Context(), args[0]); err != nil {
					return err
				}
				_, err = fmt.Fprintf(c.out, "index %s deleted\n", args[0])
				return err
			},
		},
	)
	return cmd
}

func keyField(fields []dataplane.SearchField) string {
	for _, f := range fields {
		if key, _ := f.Key(); key {
			return f.Name()
		}
	}
	return ""
}

// appendFieldRows lists sub-fields of complex fields as "parent/child".
func appendFieldRows(rows *[][]string, prefix string, fields []dataplane.SearchField) {
	for _, f := range fields {
		name := prefix + f.Name()
		key, hasKey := f.Key()
		searchable, hasSearchable := f.Searchable()
		analyzer, hasAnalyzer := f.Analyzer()
		*rows = append(*rows, []string{
			name,
			f.Type().String(),
			optional(key, hasKey),
			optional(searchable, hasSearchable),
			optional(analyzer, hasAnalyzer),
		})
		if sub, ok := f.Fields(); ok {
			appendFieldRows(rows, name+"/", sub)
		}
	}
}
