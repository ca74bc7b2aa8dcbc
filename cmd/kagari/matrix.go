package main

import (
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/kagari-dev/kagari/internal/effect"
)

var (
	matrixCharset  string
	matrixDensity  float64
	matrixWidth    int
	matrixHeight   int
	matrixSeed     uint64
	matrixDuration time.Duration
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Render falling character rain",
	Long: `Render a grid of falling character streams.

Density is the per-tick probability that an idle column spawns a new
stream. --seed makes the rain reproducible.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		charset := matrixCharset
		if charset == "" {
			charset = cfg.Matrix.Charset
		}
		density := matrixDensity
		if !cmd.Flags().Changed("density") {
			density = cfg.Matrix.Density
		}

		mcfg := effect.MatrixConfig{
			Charset: effect.Charset(charset),
			Density: density,
			Width:   matrixWidth,
			Height:  matrixHeight,
		}
		if cmd.Flags().Changed("seed") {
			mcfg.Rand = rand.New(rand.NewPCG(matrixSeed, matrixSeed))
		}

		rain, err := effect.NewMatrixRain(mcfg)
		if err != nil {
			return err
		}
		return runAnimation(cmd, rain, matrixDuration, nil)
	},
}

func init() {
	matrixCmd.Flags().StringVar(&matrixCharset, "charset", "", "Alphabet (ascii, katakana, binary)")
	matrixCmd.Flags().Float64Var(&matrixDensity, "density", 0.15, "Stream spawn probability in [0,1]")
	matrixCmd.Flags().IntVar(&matrixWidth, "width", 0, "Grid width in columns (0 uses the default)")
	matrixCmd.Flags().IntVar(&matrixHeight, "height", 0, "Grid height in rows (0 uses the default)")
	matrixCmd.Flags().Uint64Var(&matrixSeed, "seed", 0, "Seed for reproducible rain")
	matrixCmd.Flags().DurationVarP(&matrixDuration, "duration", "d", 0, "Stop after this long (0 runs until interrupt)")
}
