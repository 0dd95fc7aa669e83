package auth

import (
	"testing"
	"time"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/config"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordHasher(t *testing.T) {
	hasher := newPasswordHasher()
	bcryptHasher, ok := hasher.(*BcryptHasher)
	if !ok {
		t.Fatalf("expected *BcryptHasher, got %T", hasher)
	}
	if bcryptHasher.cost != bcrypt.DefaultCost {
		t.Fatalf("unexpected cost: %d", bcryptHasher.cost)
	}
}

func TestNewTokenStrategy(t *testing.T) {
	strategy := newTokenStrategy(strategyParams{Config: &config.Config{AuthSecret: "top-secret", TokenTTL: 2 * time.Hour}})
	hmacStrategy, ok := strategy.(*HMACStrategy)
	if !ok {
		t.Fatalf("expected *HMACStrategy, got %T", strategy)
	}
	if string(hmacStrategy.secret) != "top-secret" {
		t.Fatalf("unexpected secret: %q", string(hmacStrategy.secret))
	}
	if hmacStrategy.ttl != 2*time.Hour {
		t.Fatalf("unexpected ttl: %s", hmacStrategy.ttl)
	}
}

func TestModuleProvidesPrimitives(t *testing.T) {
	var (
		hasher   PasswordHasher
		strategy Strategy
	)
	app := fxtest.New(t,
		fx.Supply(&config.Config{AuthSecret: "s"}),
		Module,
		fx.Populate(&hasher, &strategy),
	)
	app.RequireStart()
	defer app.RequireStop()

	if hasher == nil || strategy == nil {
		t.Fatal("expected auth primitives to be provided")
	}
	if strategy.Name() != "hmac" {
		t.Fatalf("unexpected strategy %s", strategy.Name())
	}
}
