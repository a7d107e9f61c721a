package main

import (
	"log/slog"
	"os"

	"github.com/igniteworks/cert-ignite-api/api"
	"github.com/igniteworks/cert-ignite-api/common/config"
	"github.com/igniteworks/cert-ignite-api/common/gorm"
	"github.com/igniteworks/cert-ignite-api/common/mongo"
	"github.com/igniteworks/cert-ignite-api/common/util"
)

func main() {
	config.LoadConfig()

	gorm.InitGorm()
	mongo.InitMongo()

	if err := util.InitMinIO(); err != nil {
		slog.Error("Failed to initialize MinIO", "error", err)
		os.Exit(1)
	}

	util.InitDialer()

	api.InitFiber()
}
