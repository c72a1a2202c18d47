package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zeebo/xxh3"
	"go.uber.org/zap"

	"github.com/agiangrant/tailcss"
	"github.com/agiangrant/tailcss/config"
)

// env is a loaded configuration with its logger.
type env struct {
	cfg *config.Config
	// path is the absolute configuration path, "" when running on defaults.
	path string
	log  *zap.Logger
}

// loadEnv reads the configuration named by --config, or the nearest one
// found from the working directory. Without one, allowDefaults decides
// between the built-in defaults and an error.
func loadEnv(flags *rootFlags, allowDefaults bool) (*env, error) {
	path := flags.configPath
	if path == "" {
		found, err := config.Find(".")
		if err != nil {
			if !allowDefaults {
				return nil, fmt.Errorf("%w\nHint: run \"tailcss init\" to create one", err)
			}
			cfg := config.Defaults()
			return newEnv(&cfg, "", flags)
		}
		path = found
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return newEnv(cfg, path, flags)
}

func newEnv(cfg *config.Config, path string, flags *rootFlags) (*env, error) {
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	log, err := cfg.Logging.Prepare()
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, path: path, log: log}, nil
}

// root is the directory content globs are relative to.
func (e *env) root() string {
	if e.path == "" {
		return "."
	}
	return filepath.Dir(e.path)
}

func (e *env) generator(workers int) (*tailcss.Generator, error) {
	return tailcss.New(e.cfg,
		tailcss.WithLogger(e.log),
		tailcss.WithRoot(e.root()),
		tailcss.WithWorkers(workers))
}

// writeOutput writes css to path, or to stdout when path is "" or "-". An
// existing file with identical content is left untouched.
func writeOutput(stdout io.Writer, path, css string) (bool, error) {
	if path == "" || path == "-" {
		_, err := io.WriteString(stdout, css)
		return true, err
	}
	if old, err := os.ReadFile(path); err == nil && xxh3.Hash(old) == xxh3.HashString(css) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(css), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}

// fingerprint hashes a file's content; 0 when it cannot be read.
func fingerprint(path string) uint64 {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	return xxh3.Hash(data)
}
