package cli

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zhicwu/mariadb-wire/internal/codec"
	"github.com/zhicwu/mariadb-wire/internal/column"
	"github.com/zhicwu/mariadb-wire/internal/logging"
	"github.com/zhicwu/mariadb-wire/internal/wire"
	"github.com/zhicwu/mariadb-wire/internal/xerrors"
)

var durationType = reflect.TypeOf(time.Duration(0))

func newDecodeCmd() *cobra.Command {
	var (
		mode     string
		typeName string
	)
	cmd := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a hex-dumped wire value as a duration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colType, err := column.ParseType(typeName)
			if err != nil {
				return err
			}
			raw, err := hex.DecodeString(args[0])
			if err != nil {
				return xerrors.WithStackTrace(fmt.Errorf("invalid hex input: %w", err))
			}
			col := &column.Column{Type: colType}
			c, err := codec.ForColumn(col, durationType)
			if err != nil {
				return err
			}
			logging.Debug("decoding value",
				zap.String("mode", mode),
				zap.Stringer("type", colType),
				zap.Int("length", len(raw)),
			)

			r := wire.NewReader(raw)
			var v interface{}
			switch mode {
			case "text":
				v, err = c.DecodeText(r, len(raw), col)
			case "binary":
				v, err = c.DecodeBinary(r, len(raw), col)
			default:
				return xerrors.WithStackTrace(fmt.Errorf("unknown mode '%s', want text or binary", mode))
			}
			if err != nil {
				return err
			}
			if v == nil {
				cmd.Println("NULL")

				return nil
			}
			cmd.Println(v)

			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "binary", "row format of the input: text or binary")
	cmd.Flags().StringVar(&typeName, "type", "TIME", "declared column type of the value")

	return cmd
}
