package cluster

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// toIndex accepts integral JSON numbers as they are. Anything else is rendered
// to text and read as a base-10 integer prefix, so "3", " 3" and "3rd" all give 3.
func toIndex(v any) (int, bool) {
	if num, ok := v.(json.Number); ok {
		if i, err := num.Int64(); err == nil {
			return fitInt(i)
		}
		if f, ok := numberValue(num); ok && !math.IsInf(f, 0) && f == math.Trunc(f) {
			if f < -(1<<63) || f >= 1<<63 {
				return 0, false
			}
			return fitInt(int64(f))
		}
	}
	return parseIntPrefix(jsString(v))
}

// numberValue reads a JSON number as a float64. Numbers too large for float64
// come back as infinity, as they do in a browser's JSON.parse.
func numberValue(num json.Number) (float64, bool) {
	f, err := strconv.ParseFloat(string(num), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// formatNumber renders f like a browser's Number toString: plain decimals
// between 1e-6 and 1e21, exponent form outside that range.
func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}

func fitInt(i int64) (int, bool) {
	if int64(int(i)) != i {
		return 0, false
	}
	return int(i), true
}

func parseIntPrefix(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	i, err := strconv.Atoi(sign + s[:end])
	if err != nil {
		return 0, false
	}
	return i, true
}

// jsString renders a decoded JSON value the way a browser's String() would,
// which is what the index prefix parser expects to read.
func jsString(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		if f, ok := numberValue(val); ok {
			return formatNumber(f)
		}
		return val.String()
	case []any:
		parts := make([]string, len(val))
		for i, el := range val {
			if el != nil {
				parts[i] = jsString(el)
			}
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	default:
		return ""
	}
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null or missing"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case json.Number:
		return "a number"
	case []any:
		return "an array"
	case map[string]any:
		return "an object"
	default:
		return "unknown"
	}
}
