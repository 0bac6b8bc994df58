package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// NewViper reads config.json from the working directory with environment
// variable override.
func NewViper() *viper.Viper {
	config := viper.New()

	config.SetConfigName("config")
	config.SetConfigType("json")
	config.AddConfigPath("./")
	config.AddConfigPath("./../")
	config.AutomaticEnv()

	if err := config.ReadInConfig(); err != nil {
		fmt.Println("config file not found, relying on defaults and environment:", err.Error())
	}

	return config
}
