package cmd

import (
	"context"

	"github.com/Matff4/imgx/pkg/imgx"
	"github.com/spf13/cobra"
)

// NewGrayscaleCmd averages the channels of every pixel.
func NewGrayscaleCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grayscale",
		Short: "convert to grayscale",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(ctx, cmd, args, "grayscale", (*imgx.Buffer).Grayscale)
		},
	}
	addIOFlags(cmd)
	return cmd
}

// NewBinaryCmd thresholds to pure black and white.
func NewBinaryCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "binary",
		Short: "threshold to black/white",
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, _ := cmd.Flags().GetInt("threshold")
			return runTransform(ctx, cmd, args, "binary", func(b *imgx.Buffer) (*imgx.Buffer, error) {
				return b.Binary(threshold)
			})
		},
	}
	addIOFlags(cmd)
	cmd.PersistentFlags().IntP("threshold", "t", 128, "gray level at or above which a pixel turns white (0-255)")
	return cmd
}

// NewNegativeCmd inverts every channel.
func NewNegativeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "negative",
		Short: "invert colors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(ctx, cmd, args, "negative", (*imgx.Buffer).Negative)
		},
	}
	addIOFlags(cmd)
	return cmd
}

// NewReduceCmd truncates each channel to the given bit depth.
func NewReduceCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reduce",
		Short: "reduce bit depth per channel",
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, _ := cmd.Flags().GetInt("bits")
			return runTransform(ctx, cmd, args, "reduced", func(b *imgx.Buffer) (*imgx.Buffer, error) {
				return b.ReduceBitDepth(bits)
			})
		},
	}
	addIOFlags(cmd)
	cmd.PersistentFlags().IntP("bits", "b", 1, "bits kept per channel (0-8)")
	return cmd
}

// NewRGBToHSLCmd packs quantized HSL into the RGB channels.
func NewRGBToHSLCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rgb2hsl",
		Short: "encode RGB as quantized HSL channels",
		Long:  "Converts every pixel to HSL and stores the quantized H, S, L values in the three image channels. The output only makes sense as input to hsl2rgb.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(ctx, cmd, args, "hsl", (*imgx.Buffer).RGBToHSL)
		},
	}
	addIOFlags(cmd)
	return cmd
}

// NewHSLToRGBCmd decodes channels produced by rgb2hsl back to RGB.
func NewHSLToRGBCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hsl2rgb",
		Short: "decode quantized HSL channels back to RGB",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(ctx, cmd, args, "rgb", func(b *imgx.Buffer) (*imgx.Buffer, error) {
				// Files carry no encoding tag; the user asserts HSL here.
				b.Encoding = imgx.EncHSL8
				return b.HSLToRGB()
			})
		},
	}
	addIOFlags(cmd)
	return cmd
}
