package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/franchise-ledger/internal/config"
	"github.com/carson-networks/franchise-ledger/internal/storage"
)

func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(env)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	logrus.WithFields(logrus.Fields{
		"address": env.Postgres.Address,
		"db":      env.Postgres.DB,
	}).Info("Migrating")

	if _, _, err = storage.Migrate(dbStorage.DB); err != nil {
		logrus.WithError(err).Fatal("storage.Migrate")
	}
}
