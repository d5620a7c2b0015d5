package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/damedic/azsearch-toolbox-go/model"
	"github.com/damedic/azsearch-toolbox-go/model/gen/dataplane"
	"github.com/damedic/azsearch-toolbox-go/model/gen/management"
	"github.com/damedic/azsearch-toolbox-go/model/wire"
)

type registry struct {
	decode func(name string, b []byte) (model.Model, error)
	names  func() []string
}

var registries = map[string]registry{
	"management": {management.DecodeModel, management.ModelNames},
	"dataplane":  {dataplane.DecodeModel, dataplane.ModelNames},
}

func (c *cli) decodeCmd() *cobra.Command {
	var modelName, plane string

	cmd := &cobra.Command{
		Use:   "decode --model NAME [--plane management|dataplane] FILE|-",
		Short: "Decode a payload offline and print it normalized",
		Long: `decode parses a payload with the generated model named by --model.
Unknown enumeration tokens, missing required fields and malformed JSON are
reported with the path of the offending field. On success the payload is
printed as the model encodes it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, ok := registries[plane]
			if !ok {
				return fmt.Errorf("unknown plane %q (use management or dataplane)", plane)
			}
			if !slices.Contains(reg.names(), modelName) {
				return fmt.Errorf("unknown model %q in plane %s, known models: %v", modelName, plane, reg.names())
			}

			data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			m, err := reg.decode(modelName, data)
			if err != nil {
				return describeDecodeError(err)
			}
			c.logger.Debug("decoded payload", "model", m.ModelName(), "bytes", len(data))
			return c.printStructured(m)
		},
	}
	cmd.Flags().StringVarP(&modelName, "model", "m", "", "Name of the model, e.g. Capability")
	cmd.Flags().StringVarP(&plane, "plane", "p", "management", "Plane the model belongs to: management, dataplane")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return data, nil
}

func describeDecodeError(err error) error {
	var (
		decodeErr *wire.DecodeError
		malformed *wire.MalformedPayloadError
	)
	switch {
	case errors.As(err, &decodeErr):
		return fmt.Errorf("invalid enumeration value: %w", err)
	case errors.As(err, &malformed):
		return fmt.Errorf("malformed payload: %w", err)
	default:
		return err
	}
}
