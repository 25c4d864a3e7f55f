//go:build !linux && !darwin

package heap

// MmapSource falls back to Go slices where anonymous mappings are not
// available.
type MmapSource struct {
	GoSource
}
