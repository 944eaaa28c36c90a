package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/journal"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/model"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/storage"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/timecalc"
)

// Config is the root configuration for tgj, stored in <home>/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	Storage StorageConfig `json:"storage"`
	Journal JournalConfig `json:"journal"`
}

// StorageConfig selects and configures the slot the journal is persisted in.
type StorageConfig struct {
	// Backend is one of "file", "sqlite", "s3" or "memory".
	Backend string `json:"backend"`
	// Key is the slot key the entry collection is stored under.
	Key string `json:"key"`
	// SQLitePath is the database file for the sqlite backend. Empty = <home>/journal.db.
	SQLitePath string   `json:"sqlite_path"`
	S3         S3Config `json:"s3"`
}

// S3Config holds object storage settings for the s3 backend.
type S3Config struct {
	Bucket          string `json:"bucket"`
	Region          string `json:"region"`
	Endpoint        string `json:"endpoint"`
	Prefix          string `json:"prefix"`
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
}

// JournalConfig holds defaults applied to new entries.
type JournalConfig struct {
	DefaultMood string `json:"default_mood"`
	// Timezone is the IANA zone calendar days are computed in. Empty = local.
	Timezone string `json:"timezone"`
}

// Environment variables overlaying the file. A .env file in the working
// directory is loaded into the environment first.
const (
	EnvHome          = "TGJ_HOME"
	EnvBackend       = "TGJ_BACKEND"
	EnvKey           = "TGJ_STORAGE_KEY"
	EnvSQLitePath    = "TGJ_SQLITE_PATH"
	EnvS3Bucket      = "TGJ_S3_BUCKET"
	EnvS3Region      = "TGJ_S3_REGION"
	EnvS3Endpoint    = "TGJ_S3_ENDPOINT"
	EnvS3Prefix      = "TGJ_S3_PREFIX"
	EnvS3AccessKeyID = "TGJ_S3_ACCESS_KEY_ID"
	EnvS3SecretKey   = "TGJ_S3_SECRET_ACCESS_KEY"
	EnvTimezone      = "TGJ_TIMEZONE"
	EnvDefaultMood   = "TGJ_DEFAULT_MOOD"
)

const (
	fileName          = "config.json"
	sqliteDefaultFile = "journal.db"
)

// Default returns a Config pre-filled with the built-in defaults.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Backend: storage.BackendFile,
			Key:     journal.DefaultKey,
		},
		Journal: JournalConfig{
			DefaultMood: model.DefaultMood,
		},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// tgj configuration – <home>/config.json
//
// All settings are optional; the built-in defaults below keep the journal in
// a local JSON file next to this config. Environment variables (TGJ_*) and
// command-line flags override these values.
{
  // ── Storage ──────────────────────────────────────────────────────────────
  "storage": {
    // Where the journal lives: "file", "sqlite", "s3" or "memory".
    "backend": "file",

    // Key the entry collection is stored under.
    "key": "gratitude.v1.entries",

    // SQLite database file for the "sqlite" backend. Empty = <home>/journal.db.
    "sqlite_path": "",

    // Object storage for the "s3" backend. Endpoint is only needed for
    // S3-compatible servers such as MinIO. Without keys the default AWS
    // credential chain is used.
    "s3": {
      "bucket": "",
      "region": "",
      "endpoint": "",
      "prefix": "",
      "access_key_id": "",
      "secret_access_key": ""
    }
  },

  // ── Journal ──────────────────────────────────────────────────────────────
  "journal": {
    // Mood assigned to entries saved without one.
    "default_mood": "😊",

    // IANA timezone deciding what "today" is, e.g. "Europe/Berlin".
    // Leave empty to use the system zone.
    "timezone": ""
  }
}
`

// HomeDir returns the data directory: $TGJ_HOME if set, otherwise ~/.tgj.
func HomeDir() (string, error) {
	if h := os.Getenv(EnvHome); h != "" {
		return h, nil
	}
	return storage.BaseDir()
}

// LoadDotEnv loads .env from the working directory into the environment,
// without overriding variables that are already set. A missing file is fine.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads <home>/config.json, creating it with annotated defaults on first
// run, then overlays TGJ_* environment variables and validates the result.
func Load(home string) (Config, error) {
	cfg, err := loadFile(filepath.Join(home, fileName))
	if err != nil {
		return Default(), err
	}
	applyEnv(&cfg)
	cfg.fillDefaults(home)
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(stripLineComments(data), &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	for env, dst := range map[string]*string{
		EnvBackend:       &cfg.Storage.Backend,
		EnvKey:           &cfg.Storage.Key,
		EnvSQLitePath:    &cfg.Storage.SQLitePath,
		EnvS3Bucket:      &cfg.Storage.S3.Bucket,
		EnvS3Region:      &cfg.Storage.S3.Region,
		EnvS3Endpoint:    &cfg.Storage.S3.Endpoint,
		EnvS3Prefix:      &cfg.Storage.S3.Prefix,
		EnvS3AccessKeyID: &cfg.Storage.S3.AccessKeyID,
		EnvS3SecretKey:   &cfg.Storage.S3.SecretAccessKey,
		EnvTimezone:      &cfg.Journal.Timezone,
		EnvDefaultMood:   &cfg.Journal.DefaultMood,
	} {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			*dst = v
		}
	}
}

// fillDefaults replaces zero-value fields so callers always get a usable Config
// even if the user only partially fills in the file.
func (c *Config) fillDefaults(home string) {
	d := Default()
	if c.Storage.Backend == "" {
		c.Storage.Backend = d.Storage.Backend
	}
	if c.Storage.Key == "" {
		c.Storage.Key = d.Storage.Key
	}
	if c.Storage.SQLitePath == "" {
		c.Storage.SQLitePath = filepath.Join(home, sqliteDefaultFile)
	}
	if c.Journal.DefaultMood == "" {
		c.Journal.DefaultMood = d.Journal.DefaultMood
	}
}

// Validate checks the backend name, the timezone, and s3 requirements.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case storage.BackendFile, storage.BackendSQLite, storage.BackendMemory:
	case storage.BackendS3:
		if c.Storage.S3.Bucket == "" {
			return fmt.Errorf("storage backend %q requires storage.s3.bucket", c.Storage.Backend)
		}
	default:
		return fmt.Errorf("unknown storage backend %q (want file, sqlite, s3 or memory)", c.Storage.Backend)
	}
	if _, err := timecalc.Location(c.Journal.Timezone); err != nil {
		return err
	}
	return nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
