package config

type RuntimeConfig struct {
	MethodCacheSize uint32
	// Output is where programs print: "stdout" or "log".
	Output string
}

func NewRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		MethodCacheSize: 256,
		Output:          "stdout",
	}
}
