package main

import (
	"bytes"
	"context"
	"cowork/config"
	"cowork/infras/jwt"
	"cowork/infras/otel/mocks"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_IssuesValidToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "local-secret"
	cfg.JWT.AccessExpireMin = 5

	var out bytes.Buffer

	cmd := newRootCmd(cfg)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--user", "m1", "--role", "staff"})

	require.NoError(t, cmd.Execute())

	claims, err := jwt.New(cfg, mocks.NewOtel()).ValidateToken(context.Background(), strings.TrimSpace(out.String()), jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "m1", claims.UserID)
	assert.Equal(t, "staff", claims.Role)
}

func TestRootCmd_RequiresUser(t *testing.T) {
	cmd := newRootCmd(&config.Config{})
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}
