package config

import (
	"strconv"

	"github.com/pkg/errors"
)

const envPrefix = "MINIRT_"

// ApplyEnv overrides fields from MINIRT_* variables found through lookup,
// usually os.LookupEnv.
func (c *AppConfig) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"HEAP_CHUNK_SIZE": &c.HeapConfig.ChunkSize,
		"HEAP_MAX_BYTES":  &c.HeapConfig.MaxBytes,
	}
	for name, dst := range ints {
		if v, ok := lookup(envPrefix + name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.Wrapf(err, "%s%s", envPrefix, name)
			}
			*dst = n
		}
	}

	if v, ok := lookup(envPrefix + "METHOD_CACHE_SIZE"); ok {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return errors.Wrapf(err, "%sMETHOD_CACHE_SIZE", envPrefix)
		}
		c.RuntimeConfig.MethodCacheSize = uint32(n)
	}

	if v, ok := lookup(envPrefix + "HEAP_SOURCE"); ok {
		c.HeapConfig.Source = v
	}
	if v, ok := lookup(envPrefix + "OUTPUT"); ok {
		c.RuntimeConfig.Output = v
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok {
		c.LoggerConfig.Level = v
	}
	return nil
}
