package shared

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"dinedesk/shared/constant"
)

const cacheKeySeparator = ":"

// IsTrueString reports whether a boolean-as-string wire field holds the literal "true".
func IsTrueString(value string) bool {
	return value == constant.BoolStringTrue
}

func BoolToString(value bool) string {
	return strconv.FormatBool(value)
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// ParseNumber reads a JSON value that the backend may send either as a number or as a numeric string.
// Anything unparsable yields zero.
func ParseNumber(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}

	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return number
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return 0
	}

	number, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0
	}

	return number
}

// ParseString reads a JSON value that may be a string, a number or a boolean and returns its text form.
func ParseString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	var number json.Number
	if err := json.Unmarshal(raw, &number); err == nil {
		return number.String()
	}

	var anyValue any
	if err := json.Unmarshal(raw, &anyValue); err != nil {
		return ""
	}

	return fmt.Sprint(anyValue)
}

// AtoiOrZero parses a decimal integer, returning zero for empty or malformed input.
func AtoiOrZero(value string) int {
	number, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}

	return number
}

func FormatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
