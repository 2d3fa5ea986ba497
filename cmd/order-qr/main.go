// Command order-qr prints the pickup code of an order in the terminal and
// optionally writes it as a PNG.
//
//	order-qr 4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a --png pickup.png
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MikeMC777/cafe-orders/internal/qr"
)

func newRootCmd() *cobra.Command {
	var (
		pngPath string
		size    int
	)
	cmd := &cobra.Command{
		Use:          "order-qr <order-id>",
		Short:        "Render the QR pickup code of an order",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := qr.Decode(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", err, args[0])
			}
			code := qr.Encode(orderID)
			out := cmd.OutOrStdout()
			code.Terminal(out)
			fmt.Fprintln(out, orderID)

			if pngPath == "" {
				return nil
			}
			png, err := code.PNG(size)
			if err != nil {
				return err
			}
			return os.WriteFile(pngPath, png, 0o644)
		},
	}
	cmd.Flags().StringVar(&pngPath, "png", "", "also write the code to this PNG file")
	cmd.Flags().IntVar(&size, "size", 256, "PNG size in pixels")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
