package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedConfigFormat is returned for config files whose extension is
// neither .json, .yaml nor .yml.
var ErrUnsupportedConfigFormat = errors.New("unsupported config file format")

// fileConfig is the on-disk shape of a config file. The same field names
// are used for JSON and YAML.
type fileConfig struct {
	App struct {
		AccessTokenKey       string   `json:"access_token_key" yaml:"access_token_key"`
		RefreshTokenKey      string   `json:"refresh_token_key" yaml:"refresh_token_key"`
		ResetTokenKey        string   `json:"reset_token_key" yaml:"reset_token_key"`
		TokenIssuer          string   `json:"token_issuer" yaml:"token_issuer"`
		AccessTokenDuration  Duration `json:"access_token_duration" yaml:"access_token_duration"`
		RefreshTokenDuration Duration `json:"refresh_token_duration" yaml:"refresh_token_duration"`
		ResetTokenDuration   Duration `json:"reset_token_duration" yaml:"reset_token_duration"`
		PublicURL            string   `json:"public_url" yaml:"public_url"`
		VerboseErrors        bool     `json:"verbose_errors" yaml:"verbose_errors"`
		BcryptCost           int      `json:"bcrypt_cost" yaml:"bcrypt_cost"`
		LogLevel             string   `json:"log_level" yaml:"log_level"`
		Version              string   `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			Driver string `json:"driver" yaml:"driver"`
			DSN    string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`

		Files struct {
			UploadsDir string `json:"uploads_dir" yaml:"uploads_dir"`
			PostsFile  string `json:"posts_file" yaml:"posts_file"`
		} `json:"files" yaml:"files"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server" yaml:"server"`

	Adapter struct {
		PlaceholderURL string   `json:"placeholder_url" yaml:"placeholder_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Mail struct {
		Host     string `json:"host" yaml:"host"`
		Port     int    `json:"port" yaml:"port"`
		Username string `json:"username" yaml:"username"`
		Password string `json:"password" yaml:"password"`
		From     string `json:"from" yaml:"from"`
	} `json:"mail" yaml:"mail"`

	Workers struct {
		PostsRefreshInterval Duration `json:"posts_refresh_interval" yaml:"posts_refresh_interval"`
	} `json:"workers" yaml:"workers"`
}

// parseFile reads a JSON or YAML config file, picking the decoder by file
// extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err = json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AccessTokenKey:       fc.App.AccessTokenKey,
			RefreshTokenKey:      fc.App.RefreshTokenKey,
			ResetTokenKey:        fc.App.ResetTokenKey,
			TokenIssuer:          fc.App.TokenIssuer,
			AccessTokenDuration:  time.Duration(fc.App.AccessTokenDuration),
			RefreshTokenDuration: time.Duration(fc.App.RefreshTokenDuration),
			ResetTokenDuration:   time.Duration(fc.App.ResetTokenDuration),
			PublicURL:            fc.App.PublicURL,
			VerboseErrors:        fc.App.VerboseErrors,
			BcryptCost:           fc.App.BcryptCost,
			LogLevel:             fc.App.LogLevel,
			Version:              fc.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: fc.Storage.DB.Driver,
				DSN:    fc.Storage.DB.DSN,
			},
			Files: Files{
				UploadsDir: fc.Storage.Files.UploadsDir,
				PostsFile:  fc.Storage.Files.PostsFile,
			},
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			GRPCAddress:    fc.Server.GRPCAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		Adapter: Adapter{
			PlaceholderURL: fc.Adapter.PlaceholderURL,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		Mail: Mail{
			Host:     fc.Mail.Host,
			Port:     fc.Mail.Port,
			Username: fc.Mail.Username,
			Password: fc.Mail.Password,
			From:     fc.Mail.From,
		},
		Workers: Workers{
			PostsRefreshInterval: time.Duration(fc.Workers.PostsRefreshInterval),
		},
	}
}

// Duration is a time.Duration decoded from either a duration string
// ("1h", "30s") or a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return d.set(v)
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var v any
	if err := value.Decode(&v); err != nil {
		return err
	}
	return d.set(v)
}

func (d *Duration) set(v any) error {
	switch value := v.(type) {
	case nil:
		*d = 0
	case float64:
		*d = Duration(time.Duration(value))
	case int:
		*d = Duration(time.Duration(value))
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
	default:
		return fmt.Errorf("invalid duration value %v", v)
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
