package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var unlock = cli.Command{
	Name:  "unlock",
	Usage: "unlock the device with its PIN",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "pin",
			Usage:    "the device PIN",
			Required: true,
		},
	},
	Action: unlockAction,
}

var lock = cli.Command{
	Name:   "lock",
	Usage:  "lock the device",
	Action: lockAction,
}

func unlockAction(ctx *cli.Context) error {
	client, cleanup, err := getClient(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	sw, err := client.Unlock(ctx.String("pin"))
	if err != nil {
		return err
	}
	if !sw.Ok() {
		return fmt.Errorf("unlock refused: %s (0x%04X)", sw, uint16(sw))
	}

	fmt.Println("device unlocked")
	return nil
}

func lockAction(ctx *cli.Context) error {
	client, cleanup, err := getClient(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	sw, err := client.Lock()
	if err != nil {
		return err
	}
	if !sw.Ok() {
		return fmt.Errorf("lock refused: %s (0x%04X)", sw, uint16(sw))
	}

	fmt.Println("device locked")
	return nil
}
