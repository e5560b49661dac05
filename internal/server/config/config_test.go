package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.EndpointAddrGRPC, ":50051")
	assert.Equal(t, c.BcryptCost, bcrypt.DefaultCost)
	assert.Equal(t, c.SessionTokenSize, 32)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, c.EndpointAddrGRPC, ":50051")
	assert.Equal(t, c.BcryptCost, bcrypt.DefaultCost)
	assert.Equal(t, c.SessionTokenSize, 32)
}
