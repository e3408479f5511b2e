package chart

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Config is a decoded chart block body. Recognized top-level keys are
// "type", "title", "width", "height", "data" and "options"; anything
// else is carried through to the serialized widget untouched.
type Config map[string]any

// Store maps generated chart identifiers to their configurations for
// one document conversion. Populated by Extract, read by Render.
type Store map[string]Config

// NewStore creates an empty per-run configuration store.
func NewStore() Store {
	return make(Store)
}

// newChartID returns a fresh identifier like "chart_9f2c41aa".
// Four random bytes keep the collision probability negligible within a
// single document while staying short enough for element ids.
func newChartID() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		panic(fmt.Sprintf("chart: reading random bytes: %v", err))
	}
	return "chart_" + hex.EncodeToString(b[:])
}
