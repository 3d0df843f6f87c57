package cli

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zhicwu/mariadb-wire/internal/codec"
	"github.com/zhicwu/mariadb-wire/internal/logging"
	"github.com/zhicwu/mariadb-wire/internal/wire"
	"github.com/zhicwu/mariadb-wire/internal/xerrors"
)

func newEncodeCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "encode <duration>",
		Short: "Encode a duration into its hex wire form",
		Long: `Encode a Go duration literal (e.g. "-10h30m", "1h1m1.5s") into the
bytes a client would place on the wire for a TIME parameter.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := time.ParseDuration(args[0])
			if err != nil {
				return xerrors.WithStackTrace(fmt.Errorf("invalid duration '%s': %w", args[0], err))
			}
			logging.Debug("encoding value",
				zap.String("mode", mode),
				zap.Duration("duration", d),
				zap.Stringer("wire_type", codec.Duration.BinaryType()),
			)

			var buf bytes.Buffer
			w := wire.NewWriter(&buf)
			switch mode {
			case "text":
				err = codec.Duration.EncodeText(w, d)
			case "binary":
				err = codec.Duration.EncodeBinary(w, d)
			default:
				return xerrors.WithStackTrace(fmt.Errorf("unknown mode '%s', want text or binary", mode))
			}
			if err != nil {
				return err
			}
			cmd.Println(hex.EncodeToString(buf.Bytes()))

			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "binary", "row format of the output: text or binary")

	return cmd
}
