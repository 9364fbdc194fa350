package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"geodna/internal/domain/entities"
	"geodna/pkg/geodna"
)

func encodeCmd(a *app) *cobra.Command {
	var precision int
	var radians bool

	c := &cobra.Command{
		Use:   "encode LAT LON",
		Short: "Encode a coordinate as a geodna code",
		Long: "Encode a coordinate as a geodna code.\n\n" +
			"Put -- before negative coordinates so they are not read as flags:\n" +
			"  geodna encode -- -41.288889 174.777222",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := parseFloat("LAT", args[0])
			if err != nil {
				return err
			}
			lon, err := parseFloat("LON", args[1])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("precision") {
				precision = a.cfg.Codec.Precision
			}

			var code string
			if radians {
				code = geodna.EncodeRadians(lat, lon, precision)
			} else {
				code = geodna.Encode(lat, lon, precision)
			}
			a.log.Debug("encode.done", "lat", lat, "lon", lon, "precision", precision, "code", code)
			return a.out.Render(code)
		},
	}

	c.Flags().IntVarP(&precision, "precision", "p", geodna.DefaultPrecision, "code length including the hemisphere marker")
	c.Flags().BoolVar(&radians, "radians", false, "LAT and LON are in radians")
	return c
}

func decodeCmd(a *app) *cobra.Command {
	var radians bool

	c := &cobra.Command{
		Use:   "decode CODE",
		Short: "Decode a geodna code to the center of its cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			decode := geodna.Decode
			if radians {
				decode = geodna.DecodeRadians
			}
			lat, lon, err := decode(args[0])
			if err != nil {
				return err
			}
			loc := entities.NewLocation(lat, lon)
			loc.Radians = radians
			return a.out.Render(loc)
		},
	}

	c.Flags().BoolVar(&radians, "radians", false, "print radians instead of degrees")
	return c
}

func bboxCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bbox CODE",
		Short: "Print the latitude/longitude box a code covers",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			box, err := geodna.BoundingBox(args[0])
			if err != nil {
				return err
			}
			return a.out.Render(box)
		},
	}
}

func infoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info CODE",
		Short: "Describe a code: precision, center and bounding box",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cell, err := entities.NewCell(args[0])
			if err != nil {
				return err
			}
			return a.out.Render(cell)
		},
	}
}

func pairCmd(a *app) *cobra.Command {
	var swap bool

	c := &cobra.Command{
		Use:   "pair CODE",
		Short: "Print the complementary strand of a code (g↔c, a↔t)",
		Long: "Print the complementary strand of a code (g↔c, a↔t).\n\n" +
			"This is a novelty: the result has no geometric relation to the input.",
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			paired, err := geodna.Pair(args[0], swap)
			if err != nil {
				return err
			}
			return a.out.Render(paired)
		},
	}

	c.Flags().BoolVar(&swap, "swap-hemispheres", false, "also swap w and e")
	return c
}

func parseFloat(name, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, s)
	}
	return f, nil
}
