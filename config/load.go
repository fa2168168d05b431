package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	configName                = "config"
	defaultMaxRequestBodySize = "64KB"
	defaultCookieName         = "token"
	defaultVerifyTimeout      = 5 * time.Second
	defaultQRCodeSize         = 256
	defaultQRCodeLevel        = "M"
)

// searchDirs are tried in order, relative to the working directory, so the
// binary and package tests both find config/config.yaml.
var searchDirs = []string{".", "config", "../config", "../../config"}

// New loads config.yaml and overlays environment variables on top of it.
func New() (*Config, error) {
	cfg, err := Load[Config](configName, searchDirs...)
	if err != nil {
		return nil, err
	}

	if cfg.Postgres == nil {
		return nil, errors.New("postgres config is required")
	}

	applyDefaults(cfg)

	return cfg, nil
}

// Load reads <name>.yaml from the first directory that has it, then applies
// environment overrides such as POSTGRES_SSLMODE -> postgres.sslMode.
func Load[T any](name string, dirs ...string) (*T, error) {
	path, err := findConfigFile(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s failed", path)
	}

	// Env keys are matched against the YAML keys so camelCase survives.
	yamlKeys := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, yamlKeys), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoderConfig(cfg)}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s failed", path)
	}

	return cfg, nil
}

func findConfigFile(filename string, dirs []string) (string, error) {
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	pwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "os.Getwd")
	}

	for _, dir := range dirs {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(pwd, dir)
		}
		candidate := filepath.Join(dir, filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found in %v", filename, dirs)
}

func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		// Env overrides arrive lower-cased.
		MatchName: strings.EqualFold,
	}
}

// applyDefaults fills optional sections that were left out of the YAML file.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.PublicBaseURL == "" && cfg.HTTP.Port > 0 {
		cfg.HTTP.PublicBaseURL = "http://localhost:" + strconv.Itoa(cfg.HTTP.Port)
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Provider == "" {
		cfg.Auth.Provider = AuthProviderFirebase
	}
	if cfg.Auth.CookieName == "" {
		cfg.Auth.CookieName = defaultCookieName
	}
	if cfg.Auth.VerifyTimeout <= 0 {
		cfg.Auth.VerifyTimeout = defaultVerifyTimeout
	}

	if cfg.Houses == nil {
		cfg.Houses = &HousesConfig{}
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeLevel
	}
}

// canonicalizeEnvKey maps ENV_VAR_NAME onto the dotted koanf path, reusing
// the spelling of keys that already exist in the YAML tree.
func canonicalizeEnvKey(rawKey string, tree map[string]any) string {
	var path []string
	node := tree

	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment == "" {
			continue
		}

		key, child, ok := matchKey(node, segment)
		if !ok {
			key, child = segment, nil
		}
		path = append(path, key)
		node = child
	}

	return strings.Join(path, ".")
}

func matchKey(node map[string]any, segment string) (string, map[string]any, bool) {
	want := normalizeToken(segment)
	for key, value := range node {
		if normalizeToken(key) == want {
			child, _ := value.(map[string]any)

			return key, child, true
		}
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	return strings.Map(func(r rune) rune {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}
