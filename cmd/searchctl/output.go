package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// printStructured writes v as indented JSON or as YAML.
// Any other output format falls back to JSON.
func (c *cli) printStructured(v json.Marshaler) error {
	data, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	if c.v.GetString("output") == "yaml" {
		return c.printYAML(data)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = c.out.Write(buf.Bytes())
	return err
}

// printYAML converts the JSON document through a yaml.Node so numbers keep their literal text.
func (c *cli) printYAML(data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	blockStyle(&doc)
	enc := yaml.NewEncoder(c.out)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}

// blockStyle clears the flow and quoting styles JSON syntax implies.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		blockStyle(child)
	}
}

func (c *cli) printTable(headers []string, rows [][]string) error {
	w := tabwriter.NewWriter(c.out, 0, 8, 2, ' ', 0)

	upperHeaders := make([]string, len(headers))
	for i, h := range headers {
		upperHeaders[i] = strings.ToUpper(h)
	}
	fmt.Fprintln(w, strings.Join(upperHeaders, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	return w.Flush()
}

// modelList renders several models as one JSON array.
type modelList[M json.Marshaler] []M

func (l modelList[M]) MarshalJSON() ([]byte, error) {
	items := make([]json.RawMessage, 0, len(l))
	for _, m := range l {
		b, err := m.MarshalJSON()
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return json.Marshal(items)
}

func optional[T any](v T, ok bool) string {
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}
