// Package config loads the application configuration from YAML files with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
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

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Backend is the remote marketplace service this client talks to.
	Backend BackendConfig `json:"backend" yaml:"backend"`

	// Storage configures the local database holding session state.
	Storage StorageConfig `json:"storage" yaml:"storage"`

	// Poller configures entitlement synchronization.
	Poller PollerConfig `json:"poller" yaml:"poller"`

	// Checkout configures the external payment hand-off.
	Checkout CheckoutConfig `json:"checkout" yaml:"checkout"`

	// Password defines client-side registration form requirements.
	Password *PasswordConfig `json:"password" yaml:"password"`

	// QRCode configuration for checkout hand-off QR codes.
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// BackendConfig defines how to reach the marketplace backend.
type BackendConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	// Timeout bounds every backend call so a hung request cannot wedge a sync.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// StorageConfig defines the durable client storage location.
type StorageConfig struct {
	Path string `json:"path" yaml:"path"`
}

// PollerConfig defines entitlement sync scheduling.
type PollerConfig struct {
	// Interval between periodic syncs while signed in.
	Interval time.Duration `json:"interval" yaml:"interval"`
	// PaymentRetryAttempts bounds the payment-return convergence loop.
	PaymentRetryAttempts int `json:"paymentRetryAttempts" yaml:"paymentRetryAttempts"`
	// PaymentRetryDelay is the pause between convergence attempts.
	PaymentRetryDelay time.Duration `json:"paymentRetryDelay" yaml:"paymentRetryDelay"`
}

// CheckoutConfig defines checkout-window watch behavior.
type CheckoutConfig struct {
	// WindowPollInterval is how often the closed flag of an external
	// checkout window is checked.
	WindowPollInterval time.Duration `json:"windowPollInterval" yaml:"windowPollInterval"`
	// FirstRefreshDelay and SecondRefreshDelay stagger the entitlement
	// refreshes fired after the checkout window closes.
	FirstRefreshDelay  time.Duration `json:"firstRefreshDelay" yaml:"firstRefreshDelay"`
	SecondRefreshDelay time.Duration `json:"secondRefreshDelay" yaml:"secondRefreshDelay"`
	// WatchTimeout abandons the window watch if the user never finishes.
	WatchTimeout time.Duration `json:"watchTimeout" yaml:"watchTimeout"`
}

// PasswordConfig defines registration password requirements checked locally.
type PasswordConfig struct {
	MinLength int `json:"minLength" yaml:"minLength"`
}

// QRCodeConfig defines QR code generation configuration.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// Defaults applied when the config file leaves a section empty.
const (
	DefaultPollInterval         = 5 * time.Minute
	DefaultPaymentRetryAttempts = 3
	DefaultPaymentRetryDelay    = 3 * time.Second
	DefaultWindowPollInterval   = time.Second
	DefaultFirstRefreshDelay    = 2 * time.Second
	DefaultSecondRefreshDelay   = 5 * time.Second
	DefaultWatchTimeout         = 30 * time.Minute
	DefaultBackendTimeout       = 15 * time.Second
	DefaultPasswordMinLength    = 6
)

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

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: BACKEND_BASEURL -> backend.baseUrl (not backend.baseurl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if cfg.Backend.BaseURL == "" {
		return nil, errors.New("backend.baseUrl must be configured")
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Backend.Timeout <= 0 {
		cfg.Backend.Timeout = DefaultBackendTimeout
	}
	if cfg.Poller.Interval <= 0 {
		cfg.Poller.Interval = DefaultPollInterval
	}
	if cfg.Poller.PaymentRetryAttempts <= 0 {
		cfg.Poller.PaymentRetryAttempts = DefaultPaymentRetryAttempts
	}
	if cfg.Poller.PaymentRetryDelay <= 0 {
		cfg.Poller.PaymentRetryDelay = DefaultPaymentRetryDelay
	}
	if cfg.Checkout.WindowPollInterval <= 0 {
		cfg.Checkout.WindowPollInterval = DefaultWindowPollInterval
	}
	if cfg.Checkout.FirstRefreshDelay <= 0 {
		cfg.Checkout.FirstRefreshDelay = DefaultFirstRefreshDelay
	}
	if cfg.Checkout.SecondRefreshDelay <= 0 {
		cfg.Checkout.SecondRefreshDelay = DefaultSecondRefreshDelay
	}
	if cfg.Checkout.WatchTimeout <= 0 {
		cfg.Checkout.WatchTimeout = DefaultWatchTimeout
	}
	if cfg.Password == nil {
		cfg.Password = &PasswordConfig{MinLength: DefaultPasswordMinLength}
	}
	if cfg.Password.MinLength <= 0 {
		cfg.Password.MinLength = DefaultPasswordMinLength
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "storefront.db"
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
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
