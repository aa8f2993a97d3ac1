package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	Portal struct {
		BaseURL            string   `json:"base_url"`
		RequestTimeout     Duration `json:"request_timeout"`
		InsecureSkipVerify bool     `json:"insecure_skip_verify"`
	} `json:"portal,omitempty"`

	Credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	} `json:"credentials,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`

	FakePortal struct {
		Address       string   `json:"address"`
		Username      string   `json:"username"`
		Password      string   `json:"password"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"fake_portal,omitempty"`
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
		Portal: Portal{
			BaseURL:            jsonCfg.Portal.BaseURL,
			RequestTimeout:     time.Duration(jsonCfg.Portal.RequestTimeout),
			InsecureSkipVerify: jsonCfg.Portal.InsecureSkipVerify,
		},
		Credentials: Credentials{
			Username: jsonCfg.Credentials.Username,
			Password: jsonCfg.Credentials.Password,
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
		FakePortal: FakePortal{
			Address:       jsonCfg.FakePortal.Address,
			Username:      jsonCfg.FakePortal.Username,
			Password:      jsonCfg.FakePortal.Password,
			TokenSignKey:  jsonCfg.FakePortal.TokenSignKey,
			TokenDuration: time.Duration(jsonCfg.FakePortal.TokenDuration),
		},
		JSONFilePath: "",
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
