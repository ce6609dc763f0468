// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package normalizer_routers

import (
	"github.com/gin-gonic/gin"

	normalizerApi "github.com/rapidaai/tts-utils/api/normalizer-api/api"
	"github.com/rapidaai/tts-utils/config"
	"github.com/rapidaai/tts-utils/pkg/commons"
)

func HealthCheckRoutes(cfg *config.AppConfig, engine *gin.Engine, logger commons.Logger, normalizer normalizerApi.TextNormalizer) {
	logger.Info("Internal HealthCheckRoutes added to engine.")
	apiv1 := engine.Group("")
	hcApi := normalizerApi.New(cfg, logger, normalizer)
	{
		apiv1.GET("/readiness/", hcApi.Readiness)
		apiv1.GET("/healthz/", hcApi.Healthz)
	}
}

func NormalizerRoutes(cfg *config.AppConfig, engine *gin.Engine, logger commons.Logger, normalizer normalizerApi.TextNormalizer) {
	logger.Info("NormalizerRoutes added to engine.")
	apiv1 := engine.Group("/v1")
	nApi := normalizerApi.New(cfg, logger, normalizer)
	{
		apiv1.POST("/normalize", nApi.Normalize)
	}
}
