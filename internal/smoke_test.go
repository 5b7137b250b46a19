package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tsclientgen "github.com/blimu-dev/tsclient-gen"
)

func TestValidateSpec_NoSpec(t *testing.T) {
	// Smoke: ensure the facade builds and ValidateSpec errors on missing file
	if _, err := os.Stat("/no/such/file.yaml"); err == nil {
		t.Fatal("expected no file")
	}
	if err := tsclientgen.ValidateSpec(context.Background(), "/no/such/file.yaml"); err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerateClient_Minimal(t *testing.T) {
	dir := t.TempDir()
	spec := filepath.Join(dir, "openapi.json")
	doc := `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{"/ping":{"get":{"operationId":"PingController_ping","responses":{"200":{"description":"ok"}}}}}}`
	if err := os.WriteFile(spec, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "client")
	if err := tsclientgen.GenerateClient(context.Background(), tsclientgen.GenerateClientOptions{Spec: spec, OutDir: out}); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"utils.ts", "models.ts", filepath.Join("services", "PingService.ts")} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}
