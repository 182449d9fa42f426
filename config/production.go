package config

import (
	"os"
	"strconv"
)

func productionConfig() Config {
	port, err := strconv.Atoi(mustLookupEnv("PORT"))
	if err != nil {
		panic(err)
	}

	return Config{
		Env:        EnvProduction,
		Port:       port,
		DateLayout: DefaultDateLayout,
		TimeLayout: DefaultTimeLayout,
	}
}

func mustLookupEnv(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		panic("Env variable not found: " + key)
	}
	return value
}
