package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// defaultEnvFiles are tried in order; the first file to define a key wins and the
// process environment always wins over any file.
var defaultEnvFiles = []string{".env.local", ".env"}

// LoadEnvFiles loads KEY=VALUE files into the process environment so fragment files can
// reference ${VARS}. Missing files are skipped. It returns the files actually loaded.
func LoadEnvFiles(paths ...string) ([]string, error) {
	if len(paths) == 0 {
		paths = defaultEnvFiles
	}
	var loaded []string
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return loaded, fmt.Errorf("load env file %s: %w", p, err)
		}
		loaded = append(loaded, p)
	}
	return loaded, nil
}
