package converter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/theoremus-urban-solutions/metlink-to-cot/cot"
)

func TestHTTPSubmitter_PostsJSON(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("content-type")
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	fc := cot.NewFeatureCollection(nil)
	if err := NewHTTPSubmitter(srv.URL).Submit(context.Background(), fc); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if gotContentType != "application/json" {
		t.Errorf("content-type = %q", gotContentType)
	}
	var round cot.FeatureCollection
	if err := json.Unmarshal(gotBody, &round); err != nil {
		t.Fatalf("posted body is not a feature collection: %v", err)
	}
	if round.Type != "FeatureCollection" {
		t.Errorf("posted type = %q", round.Type)
	}
}

func TestHTTPSubmitter_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewHTTPSubmitter(srv.URL).Submit(context.Background(), cot.NewFeatureCollection(nil))
	if err == nil {
		t.Fatal("a rejected submission must surface as an error")
	}
}

func TestWriterSubmitter(t *testing.T) {
	var buf bytes.Buffer
	if err := (WriterSubmitter{W: &buf}).Submit(context.Background(), cot.NewFeatureCollection(nil)); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	var fc cot.FeatureCollection
	if err := json.Unmarshal(buf.Bytes(), &fc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}
