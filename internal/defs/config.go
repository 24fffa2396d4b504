// internal/defs/config.go
package defs

import (
	"encoding/json"
	"image/color"
	"maps"
	"math"
)

// TrajectoryConfig is the flat key→value parameter record of a spell's
// trajectory. Values come straight from JSON, so numbers are float64.
// Getters never fail: a missing or mistyped key yields the default.
type TrajectoryConfig map[string]any

// Type returns the raw trajectory type tag ("" when absent).
func (c TrajectoryConfig) Type() string {
	return c.String("type", "")
}

func (c TrajectoryConfig) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// Float reads a numeric value.
func (c TrajectoryConfig) Float(key string, def float64) float64 {
	v, ok := c[key]
	if !ok {
		return def
	}
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) {
		return def
	}
	return f
}

// Int reads a numeric value truncated toward zero.
func (c TrajectoryConfig) Int(key string, def int) int {
	v, ok := c[key]
	if !ok {
		return def
	}
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return int(f)
}

func (c TrajectoryConfig) String(key, def string) string {
	if s, ok := c[key].(string); ok {
		return s
	}
	return def
}

// Color reads an [r, g, b] or [r, g, b, a] array. Components are clamped to 0..255.
func (c TrajectoryConfig) Color(key string, def color.RGBA) color.RGBA {
	raw, ok := c[key]
	if !ok {
		return def
	}
	var parts []float64
	switch v := raw.(type) {
	case []any:
		for _, p := range v {
			f, ok := toFloat(p)
			if !ok {
				return def
			}
			parts = append(parts, f)
		}
	case []float64:
		parts = v
	case []int:
		for _, p := range v {
			parts = append(parts, float64(p))
		}
	case color.RGBA:
		return v
	default:
		return def
	}
	if len(parts) != 3 && len(parts) != 4 {
		return def
	}
	out := color.RGBA{A: 255}
	out.R = clampByte(parts[0])
	out.G = clampByte(parts[1])
	out.B = clampByte(parts[2])
	if len(parts) == 4 {
		out.A = clampByte(parts[3])
	}
	return out
}

// Clone returns a shallow copy, so callers can inject keys without
// touching the library's record.
func (c TrajectoryConfig) Clone() TrajectoryConfig {
	if c == nil {
		return TrajectoryConfig{}
	}
	return maps.Clone(c)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint8:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func clampByte(f float64) uint8 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f)
}
