package pdfreader

import (
	"github.com/spf13/viper"
)

type RootConfig struct {
	Reader ReaderConfig `mapstructure:"reader"`
}

type ReaderConfig struct {
	InputDir           string `mapstructure:"inputDir"`
	OutputCSV          string `mapstructure:"outputCSV"`
	TitleSearchPages   int    `mapstructure:"titleSearchPages"`
	FallbackTitlePages int    `mapstructure:"fallbackTitlePages"`
	TOCScanPages       int    `mapstructure:"tocScanPages"`
}

func ReadConfig() (RootConfig, error) {
	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	viper.SetDefault("config.reader.inputDir", "data/raw")
	viper.SetDefault("config.reader.outputCSV", "data/processed/extracted_metadata.csv")
	viper.SetDefault("config.reader.titleSearchPages", 10)
	viper.SetDefault("config.reader.fallbackTitlePages", 2)
	viper.SetDefault("config.reader.tocScanPages", 15)
	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional, defaults cover local use.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return RootConfig{}, err
		}
	}
	var config RootConfig
	err := viper.UnmarshalKey("config", &config)
	return config, err
}
