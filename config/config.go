package config

type AppConfig struct {
	HeapConfig    *HeapConfig
	RuntimeConfig *RuntimeConfig
	LoggerConfig  *LoggerConfig
}

func New() *AppConfig {
	return &AppConfig{
		HeapConfig:    NewHeapConfig(),
		RuntimeConfig: NewRuntimeConfig(),
		LoggerConfig:  NewLoggerConfig(),
	}
}
