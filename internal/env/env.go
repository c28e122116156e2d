// Package env reads settings from the process environment.
package env

import (
	"os"
	"strings"

	"github.com/samber/lo"
)

// First returns the value of the first listed variable that is set and non-blank.
func First(keys ...string) string {
	values := lo.Map(keys, func(key string, _ int) string {
		return strings.TrimSpace(os.Getenv(key))
	})
	return lo.CoalesceOrEmpty(values...)
}
