package config_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/variant-catalog/cmd/config"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_USER", "catalog")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "shop")
	t.Setenv("VARIANT_CACHE_TTL", "90s")
	t.Setenv("STOCK_ZERO_POLICY", "fallthrough")
	t.Setenv("DEFAULT_PER_PAGE", "not-a-number")

	cfg := config.Load()

	if got, want := cfg.GetDSN(), "catalog:secret@tcp(db:3307)/shop?parseTime=true"; got != want {
		t.Fatalf("GetDSN() = %q, want %q", got, want)
	}
	if cfg.Catalog.VariantCacheTTL != 90*time.Second {
		t.Fatalf("VariantCacheTTL = %v, want 90s", cfg.Catalog.VariantCacheTTL)
	}
	if cfg.Catalog.StockPolicy != "fallthrough" {
		t.Fatalf("StockPolicy = %q, want fallthrough", cfg.Catalog.StockPolicy)
	}
	if cfg.Catalog.DefaultPerPage != 10 {
		t.Fatalf("DefaultPerPage = %d, want fallback 10", cfg.Catalog.DefaultPerPage)
	}
}
