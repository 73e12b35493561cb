// file: main_test.go
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrustedProxies_DefaultsToPrivateRanges(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "")

	got := trustedProxies()
	assert.NotContains(t, got, "0.0.0.0/0") // X-Forwarded-For tidak boleh dipercaya dari sembarang client
	assert.Contains(t, got, "127.0.0.1")
	assert.Contains(t, got, "10.0.0.0/8")
}

func TestTrustedProxies_OverrideFromEnv(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", " 203.0.113.7 , 10.1.0.0/16 ,")

	got := trustedProxies()
	assert.Equal(t, []string{"203.0.113.7", "10.1.0.0/16"}, got)
}
