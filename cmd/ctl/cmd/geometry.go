package cmd

import (
	"context"
	"fmt"

	"github.com/Matff4/imgx/pkg/imgx"
	"github.com/spf13/cobra"
)

// NewFlipCmd mirrors the image along one axis.
func NewFlipCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flip",
		Short: "mirror vertically or horizontally",
		RunE: func(cmd *cobra.Command, args []string) error {
			axis, _ := cmd.Flags().GetString("axis")
			return runTransform(ctx, cmd, args, "flip-"+axis, func(b *imgx.Buffer) (*imgx.Buffer, error) {
				switch axis {
				case "vertical":
					return b.FlipVertical(), nil
				case "horizontal":
					return b.FlipHorizontal(), nil
				default:
					return nil, fmt.Errorf("axis must be vertical or horizontal, got %q", axis)
				}
			})
		},
	}
	addIOFlags(cmd)
	cmd.PersistentFlags().StringP("axis", "a", "vertical", "flip axis (vertical|horizontal)")
	return cmd
}

// NewRotate90Cmd rotates by quarter-turn steps.
func NewRotate90Cmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rotate90",
		Short: "rotate by 90° steps",
		RunE: func(cmd *cobra.Command, args []string) error {
			step, _ := cmd.Flags().GetInt("step")
			return runTransform(ctx, cmd, args, fmt.Sprintf("rot%d", (step+1)*90), func(b *imgx.Buffer) (*imgx.Buffer, error) {
				return b.Rotate90(step)
			})
		},
	}
	addIOFlags(cmd)
	cmd.PersistentFlags().IntP("step", "s", 0, "quarter turns: 0=90°, 1=180°, 2=270°")
	return cmd
}

// NewRotateCmd rotates by an arbitrary angle about a pivot.
func NewRotateCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "rotate by an arbitrary angle about a pivot",
		RunE: func(cmd *cobra.Command, args []string) error {
			angle, _ := cmd.Flags().GetFloat64("angle")
			px, _ := cmd.Flags().GetFloat64("pivot-x")
			py, _ := cmd.Flags().GetFloat64("pivot-y")
			expand, _ := cmd.Flags().GetBool("expand")
			fill, _ := cmd.Flags().GetIntSlice("fill")
			if len(fill) != 3 {
				return fmt.Errorf("fill must be three channel values, got %d", len(fill))
			}
			for _, ch := range fill {
				if ch < 0 || ch > 255 {
					return fmt.Errorf("fill channels must be in [0,255], got %v", fill)
				}
			}
			opts := imgx.RotateOptions{
				ExpandCanvas: expand,
				Fill:         imgx.RGB{R: uint8(fill[0]), G: uint8(fill[1]), B: uint8(fill[2])},
			}
			return runTransform(ctx, cmd, args, "rotated", func(b *imgx.Buffer) (*imgx.Buffer, error) {
				return b.RotateAround(angle, px, py, opts)
			})
		},
	}
	addIOFlags(cmd)
	pf := cmd.PersistentFlags()
	pf.Float64("angle", 0, "rotation angle in degrees")
	pf.Float64("pivot-x", 0, "pivot x coordinate")
	pf.Float64("pivot-y", 0, "pivot y coordinate")
	pf.Bool("expand", false, "grow the canvas so nothing is clipped")
	pf.IntSlice("fill", []int{0, 0, 0}, "fill color r,g,b for uncovered pixels")
	return cmd
}

// NewScaleCmd resizes with nearest-neighbor or bilinear sampling.
func NewScaleCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "resize by scale factors",
		RunE: func(cmd *cobra.Command, args []string) error {
			xf, _ := cmd.Flags().GetFloat64("x-factor")
			yf, _ := cmd.Flags().GetFloat64("y-factor")
			bilinear, _ := cmd.Flags().GetBool("bilinear")
			if yf == 0 {
				yf = xf
			}
			op := "scaled"
			if bilinear {
				op = "bilinear"
			}
			return runTransform(ctx, cmd, args, op, func(b *imgx.Buffer) (*imgx.Buffer, error) {
				if bilinear {
					return b.ScaleBilinear(xf, yf)
				}
				return b.ScaleNearest(xf, yf)
			})
		},
	}
	addIOFlags(cmd)
	pf := cmd.PersistentFlags()
	pf.Float64P("x-factor", "x", 1, "horizontal scale factor")
	pf.Float64P("y-factor", "y", 0, "vertical scale factor; defaults to x-factor")
	pf.Bool("bilinear", false, "blend the four nearest source pixels instead of picking one")
	return cmd
}
