package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/urfave/cli/v2"

	dbbadger "github.com/keyport-network/keyportd/internal/infrastructure/storage/db/badger"
)

var audit = cli.Command{
	Name:  "audit",
	Usage: "dump the journal of export decisions (the daemon must be stopped)",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "datadir",
			Usage: "the data directory of the daemon",
			Value: btcutil.AppDataDir("keyportd", false),
		},
	},
	Action: auditAction,
}

func auditAction(ctx *cli.Context) error {
	dbManager, err := dbbadger.NewDbManager(ctx.String("datadir")+"/db", nil)
	if err != nil {
		return err
	}
	// nolint
	defer dbManager.Close()

	repository := dbbadger.NewExportRecordRepositoryImpl(dbManager.Store)
	records, err := repository.ListAllRecords(context.Background())
	if err != nil {
		return err
	}

	serialized, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(serialized))
	return nil
}
