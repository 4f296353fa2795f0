package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/cristianoliveira/headerscroll/internal/colors"
)

// Validator validates and normalizes a configuration value.
type Validator func(key, value, defaultValue string) (normalized string, err error)

type validatorRegistry struct {
	mu         sync.RWMutex
	validators map[string]Validator
}

var registry = &validatorRegistry{
	validators: make(map[string]Validator),
}

// RegisterValidator registers a validator for a configuration key.
// Panics if a validator is already registered for the key.
func RegisterValidator(key string, validator Validator) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, exists := registry.validators[key]; exists {
		panic(fmt.Sprintf("validator already registered for key: %s", key))
	}
	registry.validators[key] = validator
}

func getValidator(key string) Validator {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.validators[key]
}

// IntRangeValidator accepts integers in [minValue, maxValue].
func IntRangeValidator(minValue, maxValue int) Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < minValue || n > maxValue {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': must be an integer in [%d, %d], using default: %s", key, value, minValue, maxValue, defaultValue))
			return defaultValue, nil
		}
		return strconv.Itoa(n), nil
	}
}

// PositiveIntValidator accepts integers greater than zero.
func PositiveIntValidator() Validator {
	return IntRangeValidator(1, int(^uint(0)>>1))
}

// NonNegativeIntValidator accepts integers greater than or equal to zero.
func NonNegativeIntValidator() Validator {
	return IntRangeValidator(0, int(^uint(0)>>1))
}

// EnumValidator accepts one of the allowed values, case-insensitively.
func EnumValidator(allowed map[string]bool) Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		lower := strings.ToLower(value)
		if !allowed[lower] {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': must be one of: %s; using default: %s", key, value, allowedValues(allowed), defaultValue))
			return defaultValue, nil
		}
		return lower, nil
	}
}

// BoolValidator normalizes boolean spellings to "true"/"false".
func BoolValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		normalized := normalizeBool(value)
		if normalized != "true" && normalized != "false" {
			colors.Warning(fmt.Sprintf("invalid boolean value for %s: '%s', must be one of: 1, true, yes, on, 0, false, no, off; using default: %s", key, value, defaultValue))
			return defaultValue, nil
		}
		return normalized, nil
	}
}

func initValidators() {
	positive := PositiveIntValidator()
	RegisterValidator(KeySettleDurationMS, positive)
	RegisterValidator(KeyFlingThreshold, positive)
	RegisterValidator(KeyHeaderHeight, positive)
	RegisterValidator(KeyLoggingMaxFiles, positive)
	RegisterValidator(KeyFrameIntervalMS, IntRangeValidator(1, 1000))
	RegisterValidator(KeyContentPanes, IntRangeValidator(1, 8))
	RegisterValidator(KeyYOffset, NonNegativeIntValidator())

	RegisterValidator(KeyLoggingLevel, EnumValidator(map[string]bool{"debug": true, "info": true, "warn": true, "error": true}))

	boolValidator := BoolValidator()
	RegisterValidator(KeyLoggingEnabled, boolValidator)
	RegisterValidator(KeyDebug, boolValidator)
}

func allowedValues(allowed map[string]bool) string {
	values := make([]string, 0, len(allowed))
	for k := range allowed {
		values = append(values, k)
	}
	sort.Strings(values)
	return strings.Join(values, ", ")
}
