package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"backend": map[string]any{
			"baseUrl": "https://api.example.com",
			"timeout": "15s",
		},
		"poller": map[string]any{
			"paymentRetryDelay": "3s",
		},
		"checkout": map[string]any{
			"windowPollInterval": "1s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "BACKEND_BASEURL", want: "backend.baseUrl"},
		{envKey: "BACKEND_TIMEOUT", want: "backend.timeout"},
		{envKey: "POLLER_PAYMENTRETRYDELAY", want: "poller.paymentRetryDelay"},
		{envKey: "CHECKOUT_WINDOWPOLLINTERVAL", want: "checkout.windowPollInterval"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Poller.Interval != DefaultPollInterval {
		t.Fatalf("Poller.Interval = %v, want %v", cfg.Poller.Interval, DefaultPollInterval)
	}
	if cfg.Poller.PaymentRetryAttempts != DefaultPaymentRetryAttempts {
		t.Fatalf("PaymentRetryAttempts = %d, want %d", cfg.Poller.PaymentRetryAttempts, DefaultPaymentRetryAttempts)
	}
	if cfg.Password == nil || cfg.Password.MinLength != DefaultPasswordMinLength {
		t.Fatalf("Password defaults not applied: %+v", cfg.Password)
	}
	if cfg.Checkout.FirstRefreshDelay != DefaultFirstRefreshDelay {
		t.Fatalf("FirstRefreshDelay = %v, want %v", cfg.Checkout.FirstRefreshDelay, DefaultFirstRefreshDelay)
	}
	if cfg.Storage.Path == "" {
		t.Fatal("Storage.Path default not applied")
	}
}
