// Package testutil provides shared helpers for integration-style tests: a
// thread-safe log buffer and a tmpdir harness that stands up an App from
// literal HCL config files.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/readmegen/internal/app"
	"github.com/vk/readmegen/internal/hclconf"
	"github.com/vk/readmegen/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a startup test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
}

// StartApp writes the given config files into a temp directory and
// constructs an App from them, converting startup panics into errors.
// modules defaults to the compiled-in section list when empty.
func StartApp(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	appConfig, err := app.NewConfig(app.Config{
		ConfigPath:  tmpDir,
		LogLevel:    "debug",
		LogFormat:   "text",
		WorkerCount: 2,
		DryRun:      true,
	})
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, appConfig, hclconf.NewLoader(), modules...)
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		App:       testApp,
	}
}
