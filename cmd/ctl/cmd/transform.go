package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Matff4/imgx/pkg/imgx"
	"github.com/Matff4/imgx/pkg/util"
	"github.com/spf13/cobra"
)

// inputPath resolves the source image from --file or the first positional arg.
func inputPath(cmd *cobra.Command, args []string) (string, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" && len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return "", fmt.Errorf("input path is required. Use --file flag or provide as argument")
	}
	return path, nil
}

// runTransform decodes the input, applies fn and encodes the result to
// --out (or a derived sibling path named after the operation).
func runTransform(ctx context.Context, cmd *cobra.Command, args []string, op string, fn func(*imgx.Buffer) (*imgx.Buffer, error)) error {
	path, err := inputPath(cmd, args)
	if err != nil {
		return err
	}
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = util.UniqueOutputName(path, op)
	}

	src, err := imgx.Decode(path)
	if err != nil {
		return err
	}
	dst, err := fn(src)
	if err != nil {
		return err
	}
	if err := imgx.Encode(dst, out); err != nil {
		return err
	}
	slog.InfoContext(ctx, "transform complete",
		"op", op,
		"in", path,
		"out", out,
		"width", dst.Width,
		"height", dst.Height,
	)
	return nil
}

func addIOFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "input image path (png, jpeg, gif, bmp, tiff)")
	pf.StringP("out", "o", "", "output image path; derived from the input when empty")
}
