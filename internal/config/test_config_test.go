package config

import "testing"

func TestResolveBlobEndpoint(t *testing.T) {
	t.Setenv("MINIO_ENDPOINT", "")
	if got := resolveBlobEndpoint("local"); got != "minio:9000" {
		t.Fatalf("local default = %q, want minio:9000", got)
	}
	if got := resolveBlobEndpoint("production"); got != "" {
		t.Fatalf("production default = %q, want empty", got)
	}

	t.Setenv("MINIO_ENDPOINT", "s3.example.com:9000")
	if got := resolveBlobEndpoint("local"); got != "s3.example.com:9000" {
		t.Fatalf("explicit endpoint ignored in local: %q", got)
	}
	if got := resolveBlobEndpoint("production"); got != "s3.example.com:9000" {
		t.Fatalf("explicit endpoint ignored in production: %q", got)
	}
}

func TestResolveBlobUseSSL(t *testing.T) {
	t.Setenv("MINIO_USE_SSL", "")
	if resolveBlobUseSSL("local") {
		t.Fatal("local env must not force SSL against compose MinIO")
	}
	if !resolveBlobUseSSL("production") {
		t.Fatal("non-local env should default to SSL")
	}

	t.Setenv("MINIO_USE_SSL", "false")
	if resolveBlobUseSSL("production") {
		t.Fatal("explicit MINIO_USE_SSL=false ignored")
	}
}

func TestCanUseS3(t *testing.T) {
	full := BlobConfig{Endpoint: "minio:9000", AccessKey: "ak", SecretKey: "sk", Bucket: "b"}
	if !full.CanUseS3() {
		t.Fatal("complete config reported unusable")
	}
	for name, cfg := range map[string]BlobConfig{
		"no endpoint": {AccessKey: "ak", SecretKey: "sk", Bucket: "b"},
		"no creds":    {Endpoint: "minio:9000", Bucket: "b"},
		"no bucket":   {Endpoint: "minio:9000", AccessKey: "ak", SecretKey: "sk"},
	} {
		if cfg.CanUseS3() {
			t.Fatalf("%s: incomplete config reported usable", name)
		}
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "  ", "x", "y"); got != "x" {
		t.Fatalf("firstNonEmpty = %q, want x", got)
	}
	if got := firstNonEmpty("", "  "); got != "" {
		t.Fatalf("firstNonEmpty = %q, want empty", got)
	}
}

func TestTypedEnvGetters(t *testing.T) {
	t.Setenv("N", "12")
	if got := intFromEnv("N", 5); got != 12 {
		t.Fatalf("intFromEnv = %d, want 12", got)
	}
	t.Setenv("N", "-3")
	if got := intFromEnv("N", 5); got != 5 {
		t.Fatalf("non-positive value did not fall back: %d", got)
	}
	t.Setenv("N", "nope")
	if got := intFromEnv("N", 5); got != 5 {
		t.Fatalf("garbage value did not fall back: %d", got)
	}

	t.Setenv("F", "0.7")
	if got := floatFromEnv("F", 0.2); got != 0.7 {
		t.Fatalf("floatFromEnv = %v, want 0.7", got)
	}
	t.Setenv("B", "true")
	if !boolFromEnv("B", false) {
		t.Fatal("boolFromEnv did not parse true")
	}
}
