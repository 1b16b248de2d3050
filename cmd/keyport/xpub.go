package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/keyport-network/keyportd/pkg/bip32path"
)

var xpub = cli.Command{
	Name:      "xpub",
	Usage:     "export the extended public key at a derivation path",
	ArgsUsage: "<derivation-path>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "display",
			Usage: "ask for an on-device confirmation, required for non-standard paths",
		},
	},
	Action: xpubAction,
}

func xpubAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("missing derivation path, eg. \"m/84'/0'/0'\"")
	}

	path, err := bip32path.Parse(ctx.Args().First())
	if err != nil {
		return err
	}

	client, cleanup, err := getClient(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	pubkey, sw, err := client.GetExtendedPubkey(path, ctx.Bool("display"))
	if err != nil {
		return err
	}
	if !sw.Ok() {
		return fmt.Errorf("export refused: %s (0x%04X)", sw, uint16(sw))
	}

	fmt.Println(pubkey)
	return nil
}
