package cmd

import (
	"testing"
)

func TestDefaultFxCacheDir(t *testing.T) {
	if dir := defaultFxCacheDir(); dir == "" {
		t.Error("defaultFxCacheDir() = \"\" want a usable folder")
	}
}

func TestApiKeyPrecedence(t *testing.T) {
	t.Setenv(openfigiKeyEnv, "from-env")

	c := &convertCmd{}
	if got := c.apiKey(); got != "from-env" {
		t.Errorf("apiKey() = %q want %q", got, "from-env")
	}

	c = &convertCmd{openfigiKey: "from-flag"}
	if got := c.apiKey(); got != "from-flag" {
		t.Errorf("apiKey() = %q want %q", got, "from-flag")
	}
}
