package config

const (
	DefaultRemote     = "origin"
	DefaultConfigFile = ".tagenv.json"
)

func GetDefault() Config {
	return Config{
		Remote:     DefaultRemote,
		ConfigFile: DefaultConfigFile,
	}
}
