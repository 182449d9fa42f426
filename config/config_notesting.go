//go:build !testing

package config

const isTesting = false

func testingConfig() Config {
	panic("testing config requires the testing build tag")
}
