//go:build testing

package config

const isTesting = true

func testingConfig() Config {
	devCfg := developmentConfig()
	return Config{
		Env:        EnvTesting,
		Port:       devCfg.Port,
		DateLayout: devCfg.DateLayout,
		TimeLayout: devCfg.TimeLayout,
	}
}
