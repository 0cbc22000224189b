package config

import "testing"

func TestResolveRedisAddr(t *testing.T) {
	// t.Setenv forbids t.Parallel.
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_PORT", "")

	if got := resolveRedisAddr(); got != "localhost:6379" {
		t.Errorf("default addr = %q, want localhost:6379", got)
	}

	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")
	if got := resolveRedisAddr(); got != "cache.internal:6380" {
		t.Errorf("host/port addr = %q, want cache.internal:6380", got)
	}

	// REDIS_ADDR wins even when host/port are also set.
	t.Setenv("REDIS_ADDR", "redis.internal:7000")
	if got := resolveRedisAddr(); got != "redis.internal:7000" {
		t.Errorf("REDIS_ADDR did not take precedence: got %q", got)
	}

	// Host without port is incomplete and falls through.
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_PORT", "")
	if got := resolveRedisAddr(); got != "localhost:6379" {
		t.Errorf("host without port = %q, want localhost:6379", got)
	}
}
