// Package envfile propagates the operator's .env into the Supabase checkout
// where its compose configuration expects it.
package envfile

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Propagate copies src over dst, overwriting unconditionally. A missing source
// surfaces as the underlying not-exist error so callers can report it as such.
func Propagate(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read env file %s: %w", src, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("write env file %s: %w", dst, err)
	}
	return nil
}

// Count reports how many variables the file defines. It exists for operator
// feedback only; the compose stack remains the authority on interpreting the
// file, so callers should treat a parse error here as a warning.
func Count(path string) (int, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return 0, fmt.Errorf("parse env file %s: %w", path, err)
	}
	return len(vars), nil
}
