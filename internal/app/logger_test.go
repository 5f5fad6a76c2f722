package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Run("debug level is honored", func(t *testing.T) {
		out := &bytes.Buffer{}
		logger := newLogger("debug", "text", out)

		logger.Debug("visible")
		assert.Contains(t, out.String(), "visible")
	})

	t.Run("unrecognized level falls back to info", func(t *testing.T) {
		out := &bytes.Buffer{}
		logger := newLogger("chatty", "text", out)

		logger.Debug("hidden")
		logger.Info("visible")
		assert.NotContains(t, out.String(), "hidden")
		assert.Contains(t, out.String(), "visible")
	})

	t.Run("json format emits json records", func(t *testing.T) {
		out := &bytes.Buffer{}
		logger := newLogger("info", "json", out)

		logger.Info("hello")
		assert.Contains(t, out.String(), `"msg":"hello"`)
	})
}
