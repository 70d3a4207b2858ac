package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRowCache(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "rowcache-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			t.Logf("Error removing temp dir: %v", err)
		}
	}()

	dbPath := filepath.Join(tmpDir, "rows.db")
	cache, err := OpenRowCache(dbPath)
	if err != nil {
		t.Fatalf("Failed to open RowCache: %v", err)
	}

	testRowCacheOrder(t, cache)
	testRowCacheReplace(t, cache)
	testRowCacheKeys(t, cache)

	if err := cache.Close(); err != nil {
		t.Fatalf("Failed to close cache: %v", err)
	}

	testRowCachePersistence(t, dbPath)
}

func testRowCacheOrder(t *testing.T, cache *RowCache) {
	rows := make([][]byte, 12)
	for i := range rows {
		rows[i] = []byte{byte('a' + i)}
	}
	if err := cache.PutRows("table", rows); err != nil {
		t.Fatalf("PutRows failed: %v", err)
	}
	if err := cache.PutRows("table-other", [][]byte{[]byte("zzz")}); err != nil {
		t.Fatalf("PutRows failed: %v", err)
	}

	got, err := cache.Rows("table")
	if err != nil {
		t.Fatalf("Rows failed: %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("Rows returned %d rows; want %d", len(got), len(rows))
	}
	for i := range rows {
		if !bytes.Equal(got[i], rows[i]) {
			t.Errorf("row %d = %s; want %s", i, got[i], rows[i])
		}
	}
}

func testRowCacheReplace(t *testing.T, cache *RowCache) {
	if err := cache.PutRows("table", [][]byte{[]byte("only")}); err != nil {
		t.Fatalf("PutRows failed: %v", err)
	}
	got, err := cache.Rows("table")
	if err != nil {
		t.Fatalf("Rows failed: %v", err)
	}
	if len(got) != 1 || string(got[0]) != "only" {
		t.Errorf("Rows after replace = %q; want [only]", got)
	}

	missing, err := cache.Rows("nothing-here")
	if err != nil || missing != nil {
		t.Errorf("Rows(missing) = %q, %v; want nil, nil", missing, err)
	}
}

func testRowCacheKeys(t *testing.T, cache *RowCache) {
	if err := cache.Set("meta/table", []byte("v1")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	val, err := cache.Get("meta/table")
	if err != nil || string(val) != "v1" {
		t.Errorf("Get = %q, %v; want v1", val, err)
	}
	val, err = cache.Get("meta/unknown")
	if err != nil || val != nil {
		t.Errorf("Get(unknown) = %q, %v; want nil, nil", val, err)
	}
}

func testRowCachePersistence(t *testing.T, dbPath string) {
	cache, err := OpenRowCache(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen RowCache: %v", err)
	}
	defer func() {
		if err := cache.Close(); err != nil {
			t.Errorf("Failed to close reopened cache: %v", err)
		}
	}()

	got, err := cache.Rows("table-other")
	if err != nil || len(got) != 1 || string(got[0]) != "zzz" {
		t.Errorf("persisted rows = %q, %v; want [zzz]", got, err)
	}
}

func TestGetCacheFileName(t *testing.T) {
	tests := []struct {
		url, prefix, want string
	}{
		{"https://example.com/data/countries.geo.json", "[geo]", "geo_countries.geo.json"},
		{"https://example.com/data/table.csv?raw=1", "", "table.csv"},
		{"https://example.com/data/", "[a b]", "a_b_data"},
	}
	for _, tt := range tests {
		if got := GetCacheFileName(tt.url, tt.prefix); got != tt.want {
			t.Errorf("GetCacheFileName(%q, %q) = %q; want %q", tt.url, tt.prefix, got, tt.want)
		}
	}
}
