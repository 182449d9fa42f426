package config

import (
	"os"
)

type Config struct {
	Env  Env
	Port int

	// Layouts used when a caller doesn't ask for a specific one.
	DateLayout string
	TimeLayout string
}

type Env int

const (
	EnvDevelopment Env = iota
	EnvTesting
	EnvProduction
)

func (e Env) IsDevOrTest() bool {
	return e == EnvDevelopment || e == EnvTesting
}

const DefaultDateLayout = "YYYY-MMM-DD"
const DefaultTimeLayout = "h:mm A"

var Cfg Config

func init() {
	if isTesting {
		Cfg = testingConfig()
		return
	}

	_, ok := os.LookupEnv("FORMTOOLS_ENV")
	if !ok {
		Cfg = developmentConfig()
		return
	}

	Cfg = productionConfig()
}
