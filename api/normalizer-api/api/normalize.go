// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package normalizer_api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	internal_normalizers "github.com/rapidaai/tts-utils/api/normalizer-api/internal/normalizers"
	"github.com/rapidaai/tts-utils/config"
	"github.com/rapidaai/tts-utils/pkg/commons"
)

// TextNormalizer is satisfied by *internal_normalizers.Pipeline.
type TextNormalizer interface {
	Normalize(ctx context.Context, text string) (string, error)
}

type NormalizeRequest struct {
	Text string `json:"text" binding:"required"`
}

type NormalizeResponse struct {
	Text       string `json:"text"`
	Normalized string `json:"normalized"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type normalizerApi struct {
	cfg        *config.AppConfig
	logger     commons.Logger
	normalizer TextNormalizer
}

type NormalizerApi interface {
	Normalize(c *gin.Context)
	Readiness(c *gin.Context)
	Healthz(c *gin.Context)
}

func New(cfg *config.AppConfig, logger commons.Logger, normalizer TextNormalizer) NormalizerApi {
	return &normalizerApi{
		cfg:        cfg,
		logger:     logger,
		normalizer: normalizer,
	}
}

// Normalize handles POST /v1/normalize.
func (api *normalizerApi) Normalize(c *gin.Context) {
	requestID := c.GetHeader(commons.HEADER_REQUEST_ID)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	c.Header(commons.HEADER_REQUEST_ID, requestID)
	ctx := commons.WithRequestID(c.Request.Context(), requestID)

	var req NormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.Tracef(ctx, "normalize: invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "text is required"})
		return
	}

	normalized, err := api.normalizer.Normalize(ctx, req.Text)
	if err != nil {
		if errors.Is(err, internal_normalizers.ErrNumericOverflow) || errors.Is(err, internal_normalizers.ErrMalformedInput) {
			api.logger.Tracef(ctx, "normalize: rejected input: %v", err)
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
			return
		}
		api.logger.Errorf("normalize: unexpected failure for request %s: %v", requestID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "unable to normalize text"})
		return
	}

	api.logger.Tracef(ctx, "normalize: %d bytes in, %d bytes out", len(req.Text), len(normalized))
	c.JSON(http.StatusOK, NormalizeResponse{Text: req.Text, Normalized: normalized})
}

func (api *normalizerApi) Readiness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ready": true})
}

func (api *normalizerApi) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"healthy": true,
		"service": api.cfg.Name,
		"version": api.cfg.Version,
		"locale":  api.cfg.Locale,
	})
}
