// Package utils provides download, caching and storage helpers for the population explorer.
package utils

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("file not found on server")

type progressWriter struct {
	io.Writer
	total uint64
	last  uint64
	label string
}

func (pw *progressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.total += uint64(n)
	if pw.total-pw.last > 5*1024*1024 { // Log every 5MB
		log.Printf("%s: Downloaded %d MB", pw.label, pw.total/1024/1024)
		pw.last = pw.total
	}
	return n, err
}

// DownloadFile downloads a file from a URL to a local path safely.
func DownloadFile(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("Error closing response body: %v", err)
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	// Temp file in the same directory so the rename is atomic
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()
	defer func() {
		if err := os.Remove(tmpName); err != nil && !os.IsNotExist(err) {
			log.Printf("Error removing temp file %s: %v", tmpName, err)
		}
	}()

	pw := &progressWriter{Writer: tmpFile, label: filepath.Base(path)}
	if _, err := io.Copy(pw, resp.Body); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// GetCacheFileName returns the local file name used to cache url.
func GetCacheFileName(url, logPrefix string) string {
	urlParts := strings.Split(strings.TrimRight(url, "/"), "/")
	fileName := urlParts[len(urlParts)-1]
	if i := strings.IndexAny(fileName, "?#"); i >= 0 {
		fileName = fileName[:i]
	}

	sanitizedPrefix := strings.Trim(logPrefix, "[]")
	sanitizedPrefix = strings.ReplaceAll(sanitizedPrefix, " ", "_")
	if sanitizedPrefix != "" {
		fileName = sanitizedPrefix + "_" + fileName
	}
	return fileName
}

// GetCachedReader returns a reader for url. With a non-empty cacheDir the body is downloaded once
// and served from disk afterwards.
func GetCachedReader(url, cacheDir, logPrefix string) (io.ReadCloser, error) {
	if cacheDir != "" {
		if err := os.MkdirAll(cacheDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create cache dir: %w", err)
		}
		localPath := filepath.Join(cacheDir, GetCacheFileName(url, logPrefix))

		if _, err := os.Stat(localPath); os.IsNotExist(err) {
			log.Printf("%s Downloading %s", logPrefix, url)
			if err := DownloadFile(url, localPath); err != nil {
				return nil, err
			}
		} else {
			log.Printf("%s Using cached file: %s", logPrefix, localPath)
		}
		f, err := os.Open(localPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open cache: %w", err)
		}
		return f, nil
	}

	log.Printf("%s Streaming from %s", logPrefix, url)
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		if err := resp.Body.Close(); err != nil {
			log.Printf("Error closing response body: %v", err)
		}
		if resp.StatusCode == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}
	return resp.Body, nil
}
