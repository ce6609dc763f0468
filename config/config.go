// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/rapidaai/tts-utils/pkg/commons"
	"github.com/rapidaai/tts-utils/pkg/utils"
)

type DatasetConfig struct {
	Workers   int  `mapstructure:"workers" validate:"required,min=1"`
	Lowercase bool `mapstructure:"lowercase"`
}

// Application config structure
type AppConfig struct {
	Name        string `mapstructure:"service_name" validate:"required"`
	Version     string `mapstructure:"version" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,oneof=development production"`
	Host        string `mapstructure:"host" validate:"required"`
	Port        int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	LogLevel    string `mapstructure:"log_level" validate:"required"`
	LogFile     string `mapstructure:"log_file"`

	// normalization
	Locale           string `mapstructure:"locale" validate:"required"`
	AbbreviationFile string `mapstructure:"abbreviation_file"`
	// SEPARATOR joined stage names; empty runs every stage
	Normalizers string `mapstructure:"normalizers"`

	DatasetConfig DatasetConfig `mapstructure:"dataset" validate:"required"`
}

// IsProduction reports whether the service runs in production mode.
func (c *AppConfig) IsProduction() bool {
	return utils.FromEnvironmentStr(c.Environment) == utils.PRODUCTION
}

// Stages splits Normalizers into stage names.
func (c *AppConfig) Stages() []string {
	return utils.SplitList(c.Normalizers, commons.SEPARATOR)
}

// Address is HOST:PORT.
func (c *AppConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// reading config and intializing configs for application
func InitConfig() (*viper.Viper, error) {
	vConfig := viper.NewWithOptions(viper.KeyDelimiter("__"))

	vConfig.AddConfigPath(".")
	vConfig.SetConfigName(".env")
	path := os.Getenv("ENV_PATH")
	if path != "" {
		log.Printf("env path %v", path)
		vConfig.SetConfigFile(path)
	}
	vConfig.SetConfigType("env")
	vConfig.AutomaticEnv()

	setDefault(vConfig)
	if err := vConfig.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: unable to read config: %w", err)
		}
		log.Printf("Reading from env varaibles.")
	}
	return vConfig, nil
}

func setDefault(v *viper.Viper) {
	// setting all default values
	// keeping watch on https://github.com/spf13/viper/issues/188

	v.SetDefault("SERVICE_NAME", "tts-utils")
	v.SetDefault("VERSION", "0.1.0")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 9090)
	v.SetDefault("LOG_LEVEL", "debug")
	v.SetDefault("LOG_FILE", "")

	v.SetDefault("LOCALE", "pt-BR")
	v.SetDefault("ABBREVIATION_FILE", "")
	v.SetDefault("NORMALIZERS", "")

	v.SetDefault("DATASET__WORKERS", 4)
	v.SetDefault("DATASET__LOWERCASE", true)
}

// Getting application config from viper
func GetApplicationConfig(v *viper.Viper) (*AppConfig, error) {
	var config AppConfig
	err := v.Unmarshal(&config, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	})
	if err != nil {
		log.Printf("%+v\n", err)
		return nil, err
	}

	// valdating the app config
	validate := validator.New()
	err = validate.Struct(&config)
	if err != nil {
		log.Printf("%+v\n", err)
		return nil, err
	}
	return &config, nil
}
