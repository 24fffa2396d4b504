// internal/defs/loader.go
package defs

import (
	"fmt"
	"log/slog"
	"os"
)

// LoadSpellLibrary reads a spell catalog file.
func LoadSpellLibrary(path string) (SpellLibrary, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spell definitions file: %w", err)
	}

	lib, err := ParseSpellLibrary(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Info("loaded spell definitions", "path", path, "count", len(lib))
	return lib, nil
}

// LoadEnemyLibrary reads the enemy configuration file.
func LoadEnemyLibrary(path string) (EnemyLibrary, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	lib, err := ParseEnemyLibrary(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Info("loaded enemy definitions", "path", path, "count", len(lib))
	return lib, nil
}

// SpellLibraryFrom loads the catalog at path, or the built-in one when path is empty.
func SpellLibraryFrom(path string) (SpellLibrary, error) {
	if path == "" {
		return DefaultSpellLibrary()
	}
	return LoadSpellLibrary(path)
}

// EnemyLibraryFrom loads the enemy catalog at path, or the built-in one when path is empty.
func EnemyLibraryFrom(path string) (EnemyLibrary, error) {
	if path == "" {
		return DefaultEnemyLibrary()
	}
	return LoadEnemyLibrary(path)
}
