package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/vycasas/inkwell"
)

// siteCfg is populated from config.yaml, INKWELL_* environment variables,
// and defaults before any subcommand runs.
var siteCfg inkwell.SiteConfig

// loadConfig reads configuration with viper. A missing config file is fine
// when no path was given explicitly; defaults fill the gaps.
func loadConfig(path string) error {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetDefault("name", "Blog")
	viper.SetDefault("url", "http://localhost:8080")
	viper.SetDefault("description", "")
	viper.SetDefault("author", "")
	viper.SetDefault("content_dir", "content")
	viper.SetDefault("static_dir", "static")
	viper.SetDefault("output_dir", "public")
	viper.SetDefault("addr", ":8080")
	viper.SetDefault("posts_per_page", 10)
	viper.SetDefault("more_marker", inkwell.DefaultMoreMarker)
	viper.SetDefault("cache_path", ".inkwell/cache.db")
	viper.SetDefault("no_cache", false)
	viper.SetDefault("include_drafts", false)
	viper.SetDefault("max_image_width", 0)

	viper.SetEnvPrefix("INKWELL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Running without a config file is supported.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := viper.Unmarshal(&siteCfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}
