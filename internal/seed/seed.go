// Package seed loads starter content packs into a Tomekeeper database.
// It ships with embedded packs for attributes, species, classes, and
// skills, and can read the same files from a directory instead.
package seed

import (
	"context"
	"embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	entrypoint "github.com/feywood/tomekeeper/internal/platform/cmd"
	"github.com/feywood/tomekeeper/internal/storage/sqlite"
)

//go:embed content/*.yaml
var defaultContent embed.FS

// Config holds configuration for the seeder.
type Config struct {
	// DBPath locates the sqlite database file, shared with the server.
	DBPath string `env:"TOMEKEEPER_DB_PATH" envDefault:"data/tomekeeper.db"`
	// Dir points at a directory of content packs. Empty means the packs
	// embedded in the binary.
	Dir string
	// DryRun validates the packs without writing to the database.
	DryRun bool
}

// ParseConfig reads environment defaults and CLI flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to the sqlite database file")
	fs.StringVar(&cfg.Dir, "dir", cfg.Dir, "directory with content packs (defaults to the embedded packs)")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "validate packs without writing to the database")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.DBPath) == "" {
		return Config{}, errors.New("db-path is required")
	}

	return cfg, nil
}

// Run executes the seeder using the provided Config.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	dbPath := strings.TrimSpace(cfg.DBPath)
	if dbPath == "" {
		return errors.New("db-path is required")
	}

	fsys, err := contentFS(cfg.Dir)
	if err != nil {
		return err
	}

	packs, err := readPacks(fsys)
	if err != nil {
		return err
	}
	if err := validatePacks(packs); err != nil {
		return err
	}

	if cfg.DryRun {
		_, err = fmt.Fprintf(out, "validated %d record(s)\n", packs.count())
		return err
	}

	store, err := openStore(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	counts, err := apply(ctx, store, packs)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "seeded %d record(s) into %s (%d already present)\n", counts.inserted, dbPath, counts.skipped)
	return err
}

// contentFS selects the pack source: an explicit directory when dir is
// set, otherwise the packs embedded in the binary.
func contentFS(dir string) (fs.FS, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return fs.Sub(defaultContent, "content")
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

func openStore(path string) (*sqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}
	return sqlite.Open(path)
}

func readYAML[T any](fsys fs.FS, name string) (*T, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var value T
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return &value, nil
}
