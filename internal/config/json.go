package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the on-disk JSON layout.
type StructuredJSONConfig struct {
	App struct {
		LogLevel         string   `json:"log_level"`
		LogFile          string   `json:"log_file"`
		DisabledFeatures []string `json:"disabled_features"`
	} `json:"app,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		Backend string `json:"backend"`
		File    struct {
			Path string `json:"path"`
		} `json:"file,omitempty"`
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Keyring struct {
			Service string `json:"service"`
			User    string `json:"user"`
		} `json:"keyring,omitempty"`
		Redis struct {
			Address   string `json:"address"`
			Password  string `json:"password"`
			DB        int    `json:"db"`
			KeyPrefix string `json:"key_prefix"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel:         jsonCfg.App.LogLevel,
			LogFile:          jsonCfg.App.LogFile,
			DisabledFeatures: jsonCfg.App.DisabledFeatures,
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			File:    File{Path: jsonCfg.Storage.File.Path},
			DB:      DB{DSN: jsonCfg.Storage.DB.DSN},
			Keyring: Keyring{
				Service: jsonCfg.Storage.Keyring.Service,
				User:    jsonCfg.Storage.Keyring.User,
			},
			Redis: Redis{
				Address:   jsonCfg.Storage.Redis.Address,
				Password:  jsonCfg.Storage.Redis.Password,
				DB:        jsonCfg.Storage.Redis.DB,
				KeyPrefix: jsonCfg.Storage.Redis.KeyPrefix,
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
