package main

import (
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/keyport-network/keyportd/internal/config"
	"github.com/keyport-network/keyportd/internal/core/application"
	"github.com/keyport-network/keyportd/internal/core/domain"
	"github.com/keyport-network/keyportd/internal/infrastructure/softhsm"
	dbbadger "github.com/keyport-network/keyportd/internal/infrastructure/storage/db/badger"
	"github.com/keyport-network/keyportd/internal/infrastructure/tty"
	"github.com/keyport-network/keyportd/internal/interfaces/device"
)

func main() {
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))
	if err := config.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	netParams, _ := config.GetNetwork()
	coinTypes, _ := config.GetCoinTypes()

	mnemonic := config.GetMnemonic()
	if mnemonic == nil {
		var err error
		mnemonic, err = softhsm.GenMnemonic(256)
		if err != nil {
			log.WithError(err).Fatal("failed to generate mnemonic")
		}
		log.Warnf(
			"no mnemonic configured, generated a fresh one: %s",
			strings.Join(mnemonic, " "),
		)
	}

	hsm, err := softhsm.NewSoftHSM(mnemonic, config.GetString(config.PinKey), netParams)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize device")
	}
	fingerprint, err := hsm.MasterFingerprint()
	if err != nil {
		log.WithError(err).Fatal("failed to compute master fingerprint")
	}
	log.Infof("device master fingerprint: %s", fingerprint)

	var repository domain.ExportRecordRepository
	var dbManager *dbbadger.DbManager
	if config.GetBool(config.EnableAuditKey) {
		dbManager, err = dbbadger.NewDbManager(
			config.GetString(config.DatadirKey)+"/db", nil,
		)
		if err != nil {
			log.WithError(err).Fatal("failed to open audit db")
		}
		defer dbManager.Close()
		repository = dbbadger.NewExportRecordRepositoryImpl(dbManager.Store)
	}

	exporter := application.NewPubkeyExporter(hsm, netParams)
	exportSvc := application.NewExportService(
		hsm, tty.NewConfirmer(), exporter, coinTypes, repository,
	)

	linkSvc := device.NewService(
		config.GetString(config.ListenAddrKey), exportSvc, hsm,
	)
	if err := linkSvc.Start(); err != nil {
		log.WithError(err).Fatal("error starting device link")
	}
	defer linkSvc.Stop()

	if metricsAddr := config.GetString(config.MetricsAddrKey); metricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(metricsAddr, nil); err != nil {
				log.WithError(err).Warn("metrics server stopped")
			}
		}()
		log.Infof("metrics are served on %s/metrics", metricsAddr)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	log.Debug("exiting")
}
