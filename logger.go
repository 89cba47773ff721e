package main

import (
	"strings"

	"go.uber.org/zap"
)

// Process-wide structured logger. Defaults to a no-op so tests that exercise
// handlers directly never have to set it up.
var logger = zap.NewNop().Sugar()

func initLogger(mode string) {
	var zcfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		zcfg = zap.NewProductionConfig()
	default:
		zcfg = zap.NewDevelopmentConfig()
	}
	zl, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	logger = zl.Sugar()
}
