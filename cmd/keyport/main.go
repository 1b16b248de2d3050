package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/keyport-network/keyportd/internal/interfaces/device"
)

var deviceAddrFlag = &cli.StringFlag{
	Name:  "device_addr",
	Usage: "the address where the keyportd device link is listening",
	Value: "localhost:7399",
}

func main() {
	app := cli.NewApp()

	app.Version = formatVersion()
	app.Name = "keyport CLI"
	app.Usage = "Command line interface for the keyportd daemon"
	app.Flags = []cli.Flag{deviceAddrFlag}
	app.Commands = []*cli.Command{
		&xpub,
		&unlock,
		&lock,
		&audit,
	}

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

func getClient(ctx *cli.Context) (*device.Client, func(), error) {
	client, err := device.NewClient(ctx.String(deviceAddrFlag.Name))
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		// nolint
		client.Close()
	}
	return client, cleanup, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[keyport] %v\n", err)
	os.Exit(1)
}

func formatVersion() string {
	return "0.1.0"
}
