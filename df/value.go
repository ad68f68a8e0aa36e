package df

import (
	"math"
	"strconv"
	"strings"

	"github.com/oriumgames/props"
	"github.com/sandertv/gophertunnel/minecraft/text"
)

// ParseValue converts command text into a Value.
//
// "true" and "false" become booleans, any finite number strconv.ParseFloat
// accepts becomes a number, and everything else is a string. NaN and the
// infinities stay strings. Surrounding double quotes force a string, so
// `"true"` is the text true rather than a boolean.
func ParseValue(s string) props.Value {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return props.Str(s[1 : len(s)-1])
	}
	switch s {
	case "true":
		return props.Bool(true)
	case "false":
		return props.Bool(false)
	}
	if f, err := strconv.ParseFloat(s, 32); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return props.Float64(f)
	}
	return props.Str(s)
}

// formatValue colours a value by kind for chat output.
func formatValue(v props.Value) string {
	switch v.Kind() {
	case props.KindNum:
		return text.Colourf("<aqua>%s</aqua>", v.String())
	case props.KindStr:
		return text.Colourf("<green>%q</green>", v.Str())
	default:
		return text.Colourf("<gold>%s</gold>", v.String())
	}
}
