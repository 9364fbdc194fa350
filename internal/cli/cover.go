package cli

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"geodna/internal/domain/entities"
	"geodna/pkg/geodna"
)

func neighboursCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "neighbours CODE",
		Aliases: []string{"neighbors"},
		Short:   "The 8 cells surrounding a code",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			codes, err := geodna.Neighbours(args[0])
			if err != nil {
				return err
			}
			return a.out.Render(entities.NewCodeList(codes))
		},
	}
}

func radiusCmd(a *app) *cobra.Command {
	var (
		radiusKm  float64
		precision int
	)

	c := &cobra.Command{
		Use:   "radius CODE",
		Short: "Cells whose centers lie within a radius of a code",
		Long: "Cells whose centers lie within a radius of a code.\n\n" +
			"This scans every cell in the surrounding square, so the cost grows with\n" +
			"(radius / cell size)². Keep the precision coarse for large radii.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("km") {
				radiusKm = a.cfg.Search.RadiusKm
			}
			if !cmd.Flags().Changed("precision") {
				precision = a.cfg.Search.Precision
			}
			a.log.Debug("radius.start", "code", args[0], "km", radiusKm, "precision", precision)

			codes, err := geodna.NeighboursWithinRadius(args[0], radiusKm, precision)
			if err != nil {
				return err
			}
			a.log.Info("radius.done", "code", args[0], "found", len(codes))
			return a.out.Render(entities.NewCodeList(codes))
		},
	}

	c.Flags().Float64Var(&radiusKm, "km", 1, "search radius in kilometres")
	c.Flags().IntVarP(&precision, "precision", "p", 0, "precision of the returned codes (0: same as CODE)")
	return c
}

func reduceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reduce [CODE...]",
		Short: "Merge complete sibling quartets into their parent codes",
		Long: "Merge complete sibling quartets into their parent codes.\n\n" +
			"Codes are read from the arguments, or one per line from stdin when no\n" +
			"arguments are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			codes := args
			if len(codes) == 0 {
				var err error
				if codes, err = readCodes(cmd); err != nil {
					return err
				}
			}

			reduced, err := geodna.Reduce(codes)
			if err != nil {
				return err
			}
			a.log.Info("reduce.done", "in", len(codes), "out", len(reduced))
			return a.out.Render(entities.NewCodeList(reduced))
		},
	}
}

func readCodes(cmd *cobra.Command) ([]string, error) {
	var codes []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		codes = append(codes, strings.Fields(sc.Text())...)
	}
	return codes, sc.Err()
}
