package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// fileConfig is the on-disk layout shared by the JSON and TOML config files.
type fileConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key" toml:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer" toml:"token_issuer"`
		TokenDuration    Duration `json:"token_duration" toml:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost" toml:"password_hash_cost"`
		IdentityField    string   `json:"identity_field" toml:"identity_field"`
		LogLevel         string   `json:"log_level" toml:"log_level"`
	} `json:"app,omitempty" toml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db,omitempty" toml:"db"`
	} `json:"storage,omitempty" toml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" toml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"server,omitempty" toml:"server"`

	Adapter struct {
		UsersAddress     string   `json:"users_address" toml:"users_address"`
		PostsGRPCAddress string   `json:"posts_grpc_address" toml:"posts_grpc_address"`
		RequestTimeout   Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"adapter,omitempty" toml:"adapter"`
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:     fc.App.TokenSignKey,
			TokenIssuer:      fc.App.TokenIssuer,
			TokenDuration:    time.Duration(fc.App.TokenDuration),
			PasswordHashCost: fc.App.PasswordHashCost,
			IdentityField:    fc.App.IdentityField,
			LogLevel:         fc.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: fc.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			GRPCAddress:    fc.Server.GRPCAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		Adapter: Adapter{
			UsersAddress:     fc.Adapter.UsersAddress,
			PostsGRPCAddress: fc.Adapter.PostsGRPCAddress,
			RequestTimeout:   time.Duration(fc.Adapter.RequestTimeout),
		},
	}
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var fc fileConfig
	if err := json.NewDecoder(jsonFile).Decode(&fc); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return fc.toStructured(), nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and TOML files.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// UnmarshalText is used by the TOML decoder.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
