package impl

import (
	"io"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Password = &config.PasswordConfig{MinLength: 6}
	cfg.Poller = config.PollerConfig{
		Interval:             time.Hour,
		PaymentRetryAttempts: 3,
		PaymentRetryDelay:    5 * time.Millisecond,
	}
	cfg.Checkout = config.CheckoutConfig{
		WindowPollInterval: 5 * time.Millisecond,
		FirstRefreshDelay:  5 * time.Millisecond,
		SecondRefreshDelay: 10 * time.Millisecond,
		WatchTimeout:       time.Second,
	}

	return cfg
}

func signedInSession() *entity.Session {
	return &entity.Session{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		Profile: &entity.UserProfile{
			ID:        "user-1",
			Email:     "user@example.com",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Verified:  true,
		},
		SignedInAt: time.Now(),
	}
}

func catalogFixtureItems() []entity.CatalogItem {
	return []entity.CatalogItem{
		{ID: 3, Name: "Contract Analyzer", Price: 49.99, Category: "legal", LaunchURL: "https://tools.example.com/contracts"},
		{ID: 7, Name: "Invoice Builder", Price: 19.99, Category: "finance", LaunchURL: "https://tools.example.com/invoices"},
		{ID: 9, Name: "Tax Assistant", Price: 89.99, Category: "finance", ComingSoon: true},
	}
}
