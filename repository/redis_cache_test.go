package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestRedisCache_SetGet(t *testing.T) {
	s := miniredis.RunT(t)

	cache := NewRedisCache(s.Addr(), 0, time.Minute)
	t.Cleanup(func() { _ = cache.Close() })

	if err := cache.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if err := cache.Set("loan:1000:5:1", `{"monthly_payment":85.61}`); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok := cache.Get("loan:1000:5:1")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != `{"monthly_payment":85.61}` {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestRedisCache_TTL(t *testing.T) {
	s := miniredis.RunT(t)

	cache := NewRedisCache(s.Addr(), 0, time.Minute)
	t.Cleanup(func() { _ = cache.Close() })

	if err := cache.Set("k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if ttl := s.TTL("k"); ttl != time.Minute {
		t.Fatalf("expected ttl 1m, got %v", ttl)
	}

	s.FastForward(2 * time.Minute)
	if _, ok := cache.Get("k"); ok {
		t.Fatal("expected entry to expire")
	}
}

func TestRedisCache_Miss(t *testing.T) {
	s := miniredis.RunT(t)

	cache := NewRedisCache(s.Addr(), 0, 0)
	t.Cleanup(func() { _ = cache.Close() })

	if _, ok := cache.Get("missing"); ok {
		t.Fatal("expected miss")
	}
}

func TestRedisCache_Unreachable(t *testing.T) {
	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	addr := s.Addr()
	s.Close()

	cache := NewRedisCache(addr, 0, 0)
	t.Cleanup(func() { _ = cache.Close() })

	if err := cache.Ping(context.Background()); err == nil {
		t.Fatal("expected ping error")
	}
	if _, ok := cache.Get("k"); ok {
		t.Fatal("expected miss on unreachable server")
	}
}
