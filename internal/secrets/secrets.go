// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// The filename is the key and the trimmed contents are the value.
//
// Known key files: brand-engine-api-token.
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultDir is where the CLI looks for secrets unless told otherwise.
const DefaultDir = ".secrets"

// APITokenKey names the bearer token file that protects the HTTP API.
const APITokenKey = "brand-engine-api-token"

// maxSecretBytes caps a single secret file. Larger files are skipped.
const maxSecretBytes = 64 << 10

// Secrets maps key names to values.
type Secrets map[string]string

// APIToken returns the HTTP API bearer token, or "" when none is configured.
func (s Secrets) APIToken() string {
	return s[APITokenKey]
}

// Keys returns the loaded key names in sorted order. Values are never
// listed so the result is safe to print.
func (s Secrets) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load reads every regular, non-hidden file in dir. A missing directory is
// not an error and yields an empty set. Files that cannot be read, or are
// larger than 64 KiB, are reported on warn and skipped.
func Load(dir string, warn io.Writer) (Secrets, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return Secrets{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := make(Secrets, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		value, err := readSecret(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(warn, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if value != "" {
			s[name] = value
		}
	}
	return s, nil
}

func readSecret(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxSecretBytes+1))
	if err != nil {
		return "", err
	}
	if len(data) > maxSecretBytes {
		return "", fmt.Errorf("larger than %d bytes", maxSecretBytes)
	}
	return strings.TrimSpace(string(data)), nil
}
