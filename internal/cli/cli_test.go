package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	NewLogger(&buf, true).Debug("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestSpecLocation(t *testing.T) {
	assert.Equal(t, "https://example.com/openapi.json", specLocation("https://example.com/openapi.json"))
	assert.True(t, filepath.IsAbs(specLocation("openapi.yaml")))
	assert.Equal(t, "", specLocation(""))
}

func TestRunGenerateRequiresInput(t *testing.T) {
	logger := NewLogger(&bytes.Buffer{}, false)
	err := RunGenerate(context.Background(), logger, RunGenerateParams{Fallback: FallbackParams{Spec: "openapi.yaml"}})
	assert.Error(t, err)
}

func TestRunValidateRequiresSpec(t *testing.T) {
	assert.Error(t, RunValidate(context.Background(), ""))
}
