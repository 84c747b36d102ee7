package cli

import (
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// Environment variables that supply defaults for command flags.
const (
	EnvTable      = "HUFFTREE_TABLE"
	EnvBitsFormat = "HUFFTREE_BITS_FORMAT"
	EnvStrict     = "HUFFTREE_STRICT"
)

// DefaultEnvFiles lists the env files read from the working directory, in
// the order they are applied.
var DefaultEnvFiles = []string{".env", ".env.hufftree"}

// Config holds flag defaults gathered from the environment.
type Config struct {
	Table      string
	BitsFormat string
	Strict     bool
}

// LoadConfig reads the given env files from fs, skipping any that do not
// exist, and overlays the process environment as seen through lookupEnv.
// Files are applied in order, so a variable defined in several files takes
// its value from the last one.
func LoadConfig(fs afero.Fs, lookupEnv func(string) (string, bool), filepaths ...string) (Config, error) {
	foundEnvFiles := lo.Filter(filepaths, func(filepath string, index int) bool {
		exists, _ := afero.Exists(fs, filepath)
		return exists
	})

	envMap := map[string]string{}
	for _, filepath := range foundEnvFiles {
		vars, err := readEnvFile(fs, filepath)
		if err != nil {
			return Config{}, err
		}
		for k, v := range vars {
			envMap[k] = v
		}
	}

	get := func(key string) (string, bool) {
		if v, ok := lookupEnv(key); ok {
			return v, true
		}
		v, ok := envMap[key]
		return v, ok
	}

	cfg := Config{BitsFormat: formatBinary}
	if v, ok := get(EnvTable); ok {
		cfg.Table = v
	}
	if v, ok := get(EnvBitsFormat); ok {
		cfg.BitsFormat = v
	}
	if v, ok := get(EnvStrict); ok {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, errors.WithMessage(err, EnvStrict)
		}
		cfg.Strict = strict
	}
	return cfg, nil
}

func readEnvFile(fs afero.Fs, filepath string) (map[string]string, error) {
	f, err := fs.Open(filepath)
	if err != nil {
		return nil, errors.WithMessage(err, "open "+filepath)
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return nil, errors.WithMessage(err, "parse "+filepath)
	}
	return vars, nil
}
