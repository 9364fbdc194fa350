package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"geodna/internal/domain/entities"
	"geodna/pkg/geodna"
)

const (
	methodEquirectangular = "equirectangular"
	methodHaversine       = "haversine"
)

func projectCmd(a *app) *cobra.Command {
	var (
		bearing    float64
		distanceKm float64
		precision  int
	)

	c := &cobra.Command{
		Use:   "project CODE",
		Short: "Code of the point at a bearing and distance from CODE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("precision") {
				precision = a.cfg.Codec.Precision
			}
			code, err := geodna.PointFromPointBearingAndDistance(args[0], bearing, distanceKm, precision)
			if err != nil {
				return err
			}
			a.log.Debug("project.done", "from", args[0], "bearing", bearing, "km", distanceKm, "code", code)
			return a.out.Render(code)
		},
	}

	c.Flags().Float64Var(&bearing, "bearing", 0, "initial bearing in radians, clockwise from north")
	c.Flags().Float64Var(&distanceKm, "km", 0, "distance in kilometres")
	c.Flags().IntVarP(&precision, "precision", "p", geodna.DefaultPrecision, "length of the resulting code")
	_ = c.MarkFlagRequired("km")
	return c
}

func distanceCmd(a *app) *cobra.Command {
	var method string

	c := &cobra.Command{
		Use:   "distance CODE CODE",
		Short: "Distance in km between the centers of two codes",
		Long: "Distance in km between the centers of two codes.\n\n" +
			"The default equirectangular method is only accurate for short distances;\n" +
			"use --method haversine for long ones.",
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			var (
				km  float64
				err error
			)
			switch method {
			case methodEquirectangular:
				km, err = geodna.DistanceInKm(args[0], args[1])
			case methodHaversine:
				km, err = geodna.HaversineDistanceInKm(args[0], args[1])
			default:
				return fmt.Errorf("unknown method %q (want %s or %s)", method, methodEquirectangular, methodHaversine)
			}
			if err != nil {
				return err
			}
			return a.out.Render(entities.Distance{From: args[0], To: args[1], Km: km, Method: method})
		},
	}

	c.Flags().StringVar(&method, "method", methodEquirectangular, "equirectangular or haversine")
	return c
}
