// internal/js8/env.go
package js8

import "strings"

const (
	envQtPlatform     = "QT_QPA_PLATFORM"
	envWaylandDisplay = "WAYLAND_DISPLAY"
)

// childEnv derives the JS8Call process environment from base.
// WAYLAND_DISPLAY is dropped and QT_QPA_PLATFORM is forced when qt is set.
// base is not modified.
func childEnv(base []string, qt string) []string {
	out := make([]string, 0, len(base)+1)
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if key == envWaylandDisplay {
			continue
		}
		if key == envQtPlatform && qt != "" {
			continue
		}
		out = append(out, kv)
	}
	if qt != "" {
		out = append(out, envQtPlatform+"="+qt)
	}
	return out
}
