// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package normalizer_routers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	normalizerApi "github.com/rapidaai/tts-utils/api/normalizer-api/api"
	"github.com/rapidaai/tts-utils/config"
	"github.com/rapidaai/tts-utils/pkg/commons"
)

// NewEngine wires every route of the service onto a fresh gin engine.
func NewEngine(cfg *config.AppConfig, logger commons.Logger, normalizer normalizerApi.TextNormalizer) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowHeaders(commons.HEADER_REQUEST_ID)
	corsConfig.AddExposeHeaders(commons.HEADER_REQUEST_ID)
	engine.Use(cors.New(corsConfig))

	HealthCheckRoutes(cfg, engine, logger, normalizer)
	NormalizerRoutes(cfg, engine, logger, normalizer)
	return engine
}
