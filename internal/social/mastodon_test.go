package social

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type recordedRequest struct {
	Path   string
	Auth   string
	Fields map[string][]string
	File   string
}

func newMastodonServer(t *testing.T, requests *[]recordedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{Path: r.URL.Path, Auth: r.Header.Get("Authorization")}
		switch r.URL.Path {
		case "/api/v2/media":
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				t.Errorf("parse multipart: %v", err)
			}
			rec.Fields = r.MultipartForm.Value
			file, _, err := r.FormFile("file")
			if err != nil {
				t.Errorf("missing file: %v", err)
			} else {
				data, _ := io.ReadAll(file)
				rec.File = string(data)
			}
			*requests = append(*requests, rec)
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte(`{"id":"m-1"}`))
		case "/api/v1/statuses":
			if err := r.ParseForm(); err != nil {
				t.Errorf("parse form: %v", err)
			}
			rec.Fields = r.PostForm
			*requests = append(*requests, rec)
			_, _ = w.Write([]byte(`{"id":"s-9","url":"https://example.social/@bot/9"}`))
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestMastodonPostsMediaThenStatus(t *testing.T) {
	var requests []recordedRequest
	server := newMastodonServer(t, &requests)
	defer server.Close()

	logo := filepath.Join(t.TempDir(), "logo.png")
	if err := os.WriteFile(logo, []byte("png-bytes"), 0o644); err != nil {
		t.Fatalf("write logo: %v", err)
	}

	client, err := NewMastodon(server.URL+"/", "secret", WithVisibility("unlisted"))
	if err != nil {
		t.Fatalf("NewMastodon failed: %v", err)
	}
	client.idempotency = func() string { return "fixed" }

	receipt, err := client.Post(context.Background(), Status{
		Text:      "Teenage Mutant Ninja Turtles\nhttps://en.wikipedia.org/wiki/Teenage_Mutant_Ninja_Turtles",
		MediaPath: logo,
		AltText:   "Teenage Mutant Ninja Turtles",
	})
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if diff := cmp.Diff(Receipt{ID: "s-9", URL: "https://example.social/@bot/9"}, receipt); diff != "" {
		t.Fatalf("receipt mismatch (-want +got):\n%s", diff)
	}

	if len(requests) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(requests))
	}
	media, status := requests[0], requests[1]
	if media.Path != "/api/v2/media" || status.Path != "/api/v1/statuses" {
		t.Fatalf("unexpected order: %s then %s", media.Path, status.Path)
	}
	for _, rec := range requests {
		if rec.Auth != "Bearer secret" {
			t.Fatalf("unexpected auth header %q", rec.Auth)
		}
	}
	if media.File != "png-bytes" {
		t.Fatalf("unexpected upload %q", media.File)
	}
	if got := media.Fields["description"]; len(got) != 1 || got[0] != "Teenage Mutant Ninja Turtles" {
		t.Fatalf("unexpected description %v", got)
	}
	want := map[string][]string{
		"status":      {"Teenage Mutant Ninja Turtles\nhttps://en.wikipedia.org/wiki/Teenage_Mutant_Ninja_Turtles"},
		"visibility":  {"unlisted"},
		"media_ids[]": {"m-1"},
	}
	if diff := cmp.Diff(want, status.Fields); diff != "" {
		t.Fatalf("status form mismatch (-want +got):\n%s", diff)
	}
}

func TestMastodonTextOnly(t *testing.T) {
	var requests []recordedRequest
	server := newMastodonServer(t, &requests)
	defer server.Close()

	client, err := NewMastodon(server.URL, "secret")
	if err != nil {
		t.Fatalf("NewMastodon failed: %v", err)
	}
	if _, err := client.Post(context.Background(), Status{Text: "hello"}); err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if len(requests) != 1 || requests[0].Path != "/api/v1/statuses" {
		t.Fatalf("expected a single status request, got %+v", requests)
	}
	if _, ok := requests[0].Fields["media_ids[]"]; ok {
		t.Fatal("text-only status must not reference media")
	}
	if got := requests[0].Fields["visibility"]; len(got) != 1 || got[0] != "public" {
		t.Fatalf("expected public default, got %v", got)
	}
}

func TestMastodonSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"Validation failed: Text character limit of 500 exceeded"}`))
	}))
	defer server.Close()

	client, err := NewMastodon(server.URL, "secret")
	if err != nil {
		t.Fatalf("NewMastodon failed: %v", err)
	}
	_, err = client.Post(context.Background(), Status{Text: "x"})
	if err == nil || !strings.Contains(err.Error(), "character limit") {
		t.Fatalf("expected api error text, got %v", err)
	}
}

func TestMastodonMissingMedia(t *testing.T) {
	client, err := NewMastodon("http://127.0.0.1:1", "secret")
	if err != nil {
		t.Fatalf("NewMastodon failed: %v", err)
	}
	_, err = client.Post(context.Background(), Status{Text: "x", MediaPath: filepath.Join(t.TempDir(), "missing.png")})
	if err == nil || !strings.Contains(err.Error(), "read media") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestNewMastodonRequiresCredentials(t *testing.T) {
	if _, err := NewMastodon("", "token"); err == nil {
		t.Fatal("expected base url error")
	}
	if _, err := NewMastodon("https://example.social", " "); err == nil {
		t.Fatal("expected token error")
	}
}

func TestDryRunReturnsEmptyReceipt(t *testing.T) {
	receipt, err := NewDryRun(nil).Post(context.Background(), Status{Text: "hello"})
	if err != nil || receipt != (Receipt{}) {
		t.Fatalf("unexpected dry run result %+v, %v", receipt, err)
	}
}
