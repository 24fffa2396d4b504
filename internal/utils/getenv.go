// internal/utils/getenv.go
package utils

import (
	"os"
	"strconv"
)

// GetEnvDefault возвращает значение переменной окружения или запасное значение.
func GetEnvDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// GetEnvInt читает целое из окружения; некорректное значение заменяется запасным.
func GetEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// GetEnvInt64 — то же, что GetEnvInt, для 64-битных значений (сиды PRNG).
func GetEnvInt64(key string, fallback int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
