package config

import (
	"os"
	"path/filepath"
	"reflect"
	"regexp"
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
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultPort               = 4567
	defaultMaxRequestBodySize = "30M"
	defaultAIBaseURL          = "https://generativelanguage.googleapis.com"
	defaultAIModel            = "gemini-2.0-flash"
	defaultAITimeout          = 60 * time.Second
	defaultMetricsPath        = "/metrics"

	// MinJWTSecretLength is the minimum signing secret size in bytes.
	MinJWTSecretLength = 32
)

// envRefPattern matches ${NAME} references inside YAML string values.
var envRefPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// StaticDir is served at / when set; an empty value disables static files.
		StaticDir string `json:"staticDir" yaml:"staticDir"`
		Timeouts  struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		CORS struct {
			AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		} `json:"cors" yaml:"cors"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	JWT struct {
		Secret string `json:"secret" yaml:"secret"`
	} `json:"jwt" yaml:"jwt"`

	// AI configures the generative-language API used for every study endpoint
	AI AIConfig `json:"ai" yaml:"ai"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Metrics configuration for the Prometheus listener
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

// AIConfig defines the upstream generation API settings
type AIConfig struct {
	APIKey  string        `json:"apiKey" yaml:"apiKey"`
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Model   string        `json:"model" yaml:"model"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// MetricsConfig defines the Prometheus exposition listener
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Port    int    `json:"port" yaml:"port"`
	Path    string `json:"path" yaml:"path"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override file values.
	// Example: AI_API_KEY -> ai.apiKey, POSTGRES_SSLMODE -> postgres.sslMode
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				expandEnvRefsHookFunc(os.LookupEnv),
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads config.yaml, applies defaults and rejects incomplete configurations.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = defaultPort
	}
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if len(c.HTTP.CORS.AllowOrigins) == 0 {
		c.HTTP.CORS.AllowOrigins = []string{"*"}
	}
	if c.AI.BaseURL == "" {
		c.AI.BaseURL = defaultAIBaseURL
	}
	if c.AI.Model == "" {
		c.AI.Model = defaultAIModel
	}
	if c.AI.Timeout <= 0 {
		c.AI.Timeout = defaultAITimeout
	}
	if c.Metrics != nil && c.Metrics.Path == "" {
		c.Metrics.Path = defaultMetricsPath
	}
}

// Validate reports the first missing or unusable required setting.
func (c *Config) Validate() error {
	switch {
	case c.JWT.Secret == "":
		return errors.New("required config key jwt.secret is not set")
	case len(c.JWT.Secret) < MinJWTSecretLength:
		return errors.Errorf("jwt.secret must be at least %d bytes, got %d", MinJWTSecretLength, len(c.JWT.Secret))
	case c.AI.APIKey == "":
		return errors.New("required config key ai.apiKey is not set")
	case c.Postgres == nil:
		return errors.New("required config section postgres is not set")
	case c.Metrics != nil && c.Metrics.Enabled && c.Metrics.Port == c.HTTP.Port:
		return errors.Errorf("metrics.port %d collides with http.port", c.Metrics.Port)
	}

	return nil
}

// expandEnvRefsHookFunc resolves ${NAME} references in string values.
// References to unset variables are left untouched so Validate can report them.
func expandEnvRefsHookFunc(lookup func(string) (string, bool)) mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, _ reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		raw, ok := data.(string)
		if !ok || !strings.Contains(raw, "${") {
			return data, nil
		}

		return envRefPattern.ReplaceAllStringFunc(raw, func(ref string) string {
			name := envRefPattern.FindStringSubmatch(ref)[1]
			if value, found := lookup(name); found {
				return value
			}

			return ref
		}), nil
	}
}

// canonicalizeEnvKey maps ENV_VAR_NAME onto the existing YAML key path. Consecutive
// segments are joined greedily so that AI_API_KEY can reach the camelCase key ai.apiKey.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := make([]string, 0, 4)
	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	canonical := make([]string, 0, len(segments))
	current := existing

	for i := 0; i < len(segments); {
		matched, next, consumed := findExistingSegment(current, segments[i:])
		if consumed == 0 {
			canonical = append(canonical, segments[i])
			current = nil
			i++

			continue
		}

		canonical = append(canonical, matched)
		current = next
		i += consumed
	}

	return strings.Join(canonical, ".")
}

// findExistingSegment looks for the longest run of segments that names a key in current.
func findExistingSegment(current map[string]any, segments []string) (matched string, next map[string]any, consumed int) {
	if len(current) == 0 {
		return "", nil, 0
	}

	for n := len(segments); n > 0; n-- {
		needle := normalizeToken(strings.Join(segments[:n], ""))
		for key, value := range current {
			if normalizeToken(key) != needle {
				continue
			}

			child, _ := value.(map[string]any)

			return key, child, n
		}
	}

	return "", nil, 0
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
