package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userkit/pkg/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestUserID(t *testing.T) {
	t.Parallel()

	attr := logger.UserID("u-123")
	require.Equal(t, "user_id", attr.Key)
	assert.Equal(t, "u-123", attr.Value.Any())

	empty := logger.UserID(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestStringAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.String("component", "mailer"), logger.Component("mailer"))
	assert.Equal(t, slog.String("event", "send"), logger.Event("send"))
	assert.Equal(t, slog.String("category", "invite"), logger.Category("invite"))
	assert.Equal(t, slog.String("backend", "sendgrid"), logger.Backend("sendgrid"))
}
