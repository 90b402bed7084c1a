package keplerian

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _keplerianconfig{outputDir: "."}
)

// _keplerianconfig is a "hidden" struct, just use `keplerianConfig`.
type _keplerianconfig struct {
	outputDir  string
	parentBody string
}

// keplerianConfig returns the library configuration. The configuration file
// is optional: without KEPLERIAN_CONFIG set, defaults apply (output to the
// working directory, Earth as default parent body).
func keplerianConfig() _keplerianconfig {
	if cfgLoaded {
		return config
	}
	confPath := os.Getenv("KEPLERIAN_CONFIG")
	if confPath == "" {
		cfgLoaded = true
		return config
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("%s/conf.toml not found", confPath))
	}
	outputDir := viper.GetString("general.output_path")
	if outputDir == "" {
		outputDir = "."
	}
	parentBody := viper.GetString("general.parent_body")
	cfgLoaded = true
	config = _keplerianconfig{outputDir: outputDir, parentBody: parentBody}
	return config
}

// DefaultParentBody returns the configured parent body, or Earth when the
// configuration does not name one.
func DefaultParentBody() CelestialObject {
	name := keplerianConfig().parentBody
	if name == "" {
		return Earth
	}
	body, err := CelestialObjectFromString(name)
	if err != nil {
		panic(err)
	}
	return body
}
