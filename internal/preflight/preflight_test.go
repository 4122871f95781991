package preflight

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"wikiturtles/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckDictionary(t *testing.T) {
	result := CheckDictionary("")
	if result.Passed || !strings.HasPrefix(result.Detail, "seed only") {
		t.Fatalf("expected seed-only dictionary to fail, got %+v", result)
	}
	if !strings.Contains(result.Detail, "WIKITURTLES_DICTIONARY") {
		t.Fatalf("expected dictionary hint, got %q", result.Detail)
	}

	path := filepath.Join(t.TempDir(), "extra.dict")
	testsupport.WriteDictionary(t, path, "COWABUNGA  K AW2 AH0 B AH1 NG G AH0")
	if result := CheckDictionary(path); !result.Passed || !strings.Contains(result.Detail, "(1 words)") {
		t.Fatalf("expected dictionary file to pass, got %+v", result)
	}

	bad := filepath.Join(t.TempDir(), "bad.dict")
	testsupport.WriteDictionary(t, bad, "LONELY")
	if result := CheckDictionary(bad); result.Passed {
		t.Fatal("expected malformed dictionary to fail")
	}
}

func TestCheckWikipedia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("meta") != "siteinfo" || r.Header.Get("User-Agent") != "wikiturtles-test" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"query":{}}`))
	}))
	defer srv.Close()

	if result := CheckWikipedia(context.Background(), srv.URL, "wikiturtles-test"); !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if result := CheckWikipedia(context.Background(), srv.URL, "other"); result.Passed {
		t.Fatal("expected failure on bad request")
	}
	if result := CheckWikipedia(context.Background(), "not a url", "x"); result.Passed {
		t.Fatal("expected failure on invalid url")
	}
}

func TestCheckMastodon(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/accounts/verify_credentials" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if result := CheckMastodon(context.Background(), srv.URL, "good-token", time.Second); !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	result := CheckMastodon(context.Background(), srv.URL, "bad-token", time.Second)
	if result.Passed || !strings.Contains(result.Detail, "invalid access token") {
		t.Fatalf("expected auth failure, got %+v", result)
	}
	if result := CheckMastodon(context.Background(), srv.URL, "", time.Second); result.Passed {
		t.Fatal("expected missing token to fail")
	}
}

func TestRunAllSkipsDisabledFeatures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testsupport.NewConfig(t,
		testsupport.WithWikipediaAPI(srv.URL),
		testsupport.WithDictionaryLines("TURTLE  T ER1 T AH0 L"),
	)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}

	results := RunAll(context.Background(), cfg)
	var names []string
	for _, r := range results {
		names = append(names, r.Name)
		if !r.Passed {
			t.Errorf("%s failed: %s", r.Name, r.Detail)
		}
	}
	want := "State directory,Log directory,Dictionary,Wikipedia"
	if got := strings.Join(names, ","); got != want {
		t.Fatalf("unexpected checks %q, want %q", got, want)
	}
}
