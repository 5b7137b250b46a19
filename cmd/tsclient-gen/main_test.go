package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petsSpec = `openapi: 3.0.3
info: {title: Pets, version: "1"}
paths:
  /pets/{petId}:
    get:
      operationId: PetController_find
      tags: [pets]
      parameters:
        - {name: petId, in: path, required: true, schema: {type: string}}
      responses:
        '200':
          description: ok
          content:
            application/json:
              schema: {$ref: '#/components/schemas/Pet'}
components:
  schemas:
    Pet:
      type: object
      properties:
        name: {type: string}
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetErr(&stderr)
	cmd.SetOut(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stderr.String(), err
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	spec := filepath.Join(dir, "openapi.yaml")
	require.NoError(t, os.WriteFile(spec, []byte(petsSpec), 0o644))
	out := filepath.Join(dir, "client")

	logs, err := execute(t, "generate", "--spec", spec, "--output", out, "--header=false", "--validate")
	require.NoError(t, err)
	assert.Contains(t, logs, "generated client")

	data, err := os.ReadFile(filepath.Join(out, "services", "PetService.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "find(props: {")
	assert.NotContains(t, string(data), "eslint-disable")
}

func TestGenerateCommandRequiresInput(t *testing.T) {
	_, err := execute(t, "generate")
	assert.ErrorContains(t, err, "either --config or both --spec and --output must be provided")
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	spec := filepath.Join(dir, "openapi.yaml")
	require.NoError(t, os.WriteFile(spec, []byte(petsSpec), 0o644))

	_, err := execute(t, "validate", "--spec", spec)
	assert.NoError(t, err)

	_, err = execute(t, "validate")
	assert.Error(t, err)

	_, err = execute(t, "validate", "--spec", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
