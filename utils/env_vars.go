package utils

import (
	"log"
	"os"
	"strconv"
)

type EnvValue interface {
	string | int | bool
}

func parseEnvValue[T EnvValue](envVar, raw string) T {
	var out T
	switch ptr := any(&out).(type) {
	case *string:
		*ptr = raw
	case *int:
		intValue, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("environment variable %s is not valid: '%s' is not an integer", envVar, raw)
		}
		*ptr = intValue
	case *bool:
		boolValue, err := strconv.ParseBool(raw)
		if err != nil {
			log.Fatalf("environment variable %s is not valid: '%s' is not a boolean", envVar, raw)
		}
		*ptr = boolValue
	}
	return out
}

// GetEnv returns the value of the environment variable, or the provided
// default if it is unset or empty.
func GetEnv[T EnvValue](envVar string, defaultValue T) T {
	raw, ok := os.LookupEnv(envVar)
	if !ok || raw == "" {
		return defaultValue
	}
	return parseEnvValue[T](envVar, raw)
}

// GetRequiredEnv exits the process if the environment variable is unset or empty.
func GetRequiredEnv[T EnvValue](envVar string) T {
	raw, ok := os.LookupEnv(envVar)
	if !ok || raw == "" {
		log.Fatalf("%s environment variable is required", envVar)
	}
	return parseEnvValue[T](envVar, raw)
}
