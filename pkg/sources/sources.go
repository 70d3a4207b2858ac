// Package sources locates and loads the population table and the country outlines.
package sources

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sudorandom/population-explorer/pkg/dataset"
	"github.com/sudorandom/population-explorer/pkg/geo"
	"github.com/sudorandom/population-explorer/pkg/utils"
)

// Flags are shared by every command.
type Flags struct {
	Population string `help:"Population table (CSV path or http(s) URL)." default:"${default_population}" env:"POPULATION_CSV"`
	GeoJSON    string `name:"geojson" help:"Country outlines (GeoJSON path or http(s) URL, e.g. ${world_geojson_url})." default:"${default_geojson}" env:"WORLD_GEOJSON"`
	CacheDir   string `help:"Directory for downloads and the parsed row cache. Empty disables caching." default:"data/cache" env:"POPULATION_CACHE_DIR"`
	Debug      bool   `help:"Enable verbose logging."`
}

// Vars supplies the ${...} defaults referenced by Flags.
func Vars() map[string]string {
	return map[string]string{
		"default_population": DefaultPopulationPath,
		"default_geojson":    DefaultGeoJSONPath,
		"world_geojson_url":  WorldGeoJSONURL,
	}
}

// LoadDotEnv reads .env from the working directory, if present, so the env fallbacks of Flags can
// live in a file. Variables already set in the environment are kept.
func LoadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[config] Ignoring .env: %v", err)
	}
}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Open returns a reader for a local path or an http(s) URL.
func Open(location, cacheDir, logPrefix string) (io.ReadCloser, error) {
	if isURL(location) {
		var dir string
		if cacheDir != "" {
			dir = filepath.Join(cacheDir, "downloads")
		}
		return utils.GetCachedReader(location, dir, logPrefix)
	}
	f, err := os.Open(location)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// LoadAtlas reads the country outlines.
func LoadAtlas(f Flags) (*geo.Atlas, error) {
	r, err := Open(f.GeoJSON, f.CacheDir, "[geo]")
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.GeoJSON, err)
	}
	defer r.Close()

	atlas, err := geo.ReadAtlas(r)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", f.GeoJSON, err)
	}
	log.Printf("[geo] Loaded %d country features from %s", atlas.Len(), f.GeoJSON)
	return atlas, nil
}

// LoadStore reads the population table, going through the row cache when a cache directory is
// configured and the source has not changed since it was cached.
func LoadStore(f Flags) (*dataset.Store, error) {
	var cache *utils.RowCache
	if f.CacheDir != "" {
		c, err := utils.OpenRowCache(filepath.Join(f.CacheDir, "rows"))
		if err != nil {
			log.Printf("[cache] Row cache unavailable, reading source directly: %v", err)
		} else {
			cache = c
			defer func() {
				if err := cache.Close(); err != nil {
					log.Printf("[cache] Error closing row cache: %v", err)
				}
			}()
		}
	}

	records, err := loadRecords(f, cache)
	if err != nil {
		return nil, err
	}
	store := dataset.NewStore(records)
	avg := store.Averages()
	log.Printf("[dataset] Loaded %d rows, %d valid for world averages", store.Len(), avg.ValidRecords)
	if avg.ValidRecords == 0 {
		log.Printf("[dataset] No valid rows, every radar score will be 0")
	}
	return store, nil
}

func loadRecords(f Flags, cache *utils.RowCache) ([]dataset.CountryRecord, error) {
	namespace := "rows/" + digest(f.Population)
	metaKey := "meta/" + digest(f.Population)
	fp := fingerprint(f.Population)

	if cache != nil && fp != "" {
		if records, ok := cachedRecords(cache, namespace, metaKey, fp); ok {
			log.Printf("[cache] Using %d cached rows for %s", len(records), f.Population)
			return records, nil
		}
	}

	r, err := Open(f.Population, f.CacheDir, "[dataset]")
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.Population, err)
	}
	defer r.Close()

	records, err := dataset.LoadCSV(r, dataset.DefaultColumns)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", f.Population, err)
	}

	if cache != nil && fp != "" {
		if err := storeRecords(cache, namespace, metaKey, fp, records); err != nil {
			log.Printf("[cache] Could not cache rows for %s: %v", f.Population, err)
		}
	}
	return records, nil
}

func cachedRecords(cache *utils.RowCache, namespace, metaKey, fp string) ([]dataset.CountryRecord, bool) {
	stored, err := cache.Get(metaKey)
	if err != nil || string(stored) != fp {
		return nil, false
	}
	rows, err := cache.Rows(namespace)
	if err != nil || len(rows) == 0 {
		return nil, false
	}
	records := make([]dataset.CountryRecord, 0, len(rows))
	for _, row := range rows {
		var rec dataset.CountryRecord
		if err := json.Unmarshal(row, &rec); err != nil {
			log.Printf("[cache] Discarding corrupt cached row: %v", err)
			return nil, false
		}
		records = append(records, rec)
	}
	return records, true
}

func storeRecords(cache *utils.RowCache, namespace, metaKey, fp string, records []dataset.CountryRecord) error {
	rows := make([][]byte, 0, len(records))
	for _, rec := range records {
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		rows = append(rows, b)
	}
	if err := cache.PutRows(namespace, rows); err != nil {
		return err
	}
	return cache.Set(metaKey, []byte(fp))
}

// fingerprint identifies a version of a local source file. URLs and unreadable paths return "",
// which disables the row cache for them.
func fingerprint(location string) string {
	if isURL(location) {
		return ""
	}
	st, err := os.Stat(location)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d-%d", st.Size(), st.ModTime().UnixNano())
}

func digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:8])
}
