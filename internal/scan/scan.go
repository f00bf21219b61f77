// Package scan enumerates build inputs and computes their fingerprints.
package scan

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar"
)

// Enumerate returns the current input set under root as a map from input
// path to SHA-256 content fingerprint.
//
// A file root yields a single entry keyed by its base name. A directory
// root is walked recursively; keys are slash-separated paths relative to
// the root, filtered by pattern when one is given. Hidden files are
// skipped.
func Enumerate(root, pattern string) (map[string]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat input root %s: %w", root, err)
	}

	files := make(map[string]string)

	if !info.IsDir() {
		hash, err := hashFile(root)
		if err != nil {
			return nil, err
		}
		files[filepath.Base(root)] = hash
		return files, nil
	}

	err = filepath.Walk(root, func(path string, fi os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if fi.IsDir() {
			if path != root && strings.HasPrefix(fi.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(fi.Name(), ".") {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if pattern != "" {
			ok, matchErr := doublestar.Match(pattern, rel)
			if matchErr != nil {
				return fmt.Errorf("matching pattern %q: %w", pattern, matchErr)
			}
			if !ok {
				return nil
			}
		}

		hash, hashErr := hashFile(path)
		if hashErr != nil {
			return hashErr
		}
		files[rel] = hash
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return files, nil
}

// Abs returns the absolute path of an enumerated input. When the root is
// a single file the key is its base name and the root itself is the path.
func Abs(root, rel string) string {
	info, err := os.Stat(root)
	if err == nil && !info.IsDir() {
		return root
	}
	return filepath.Join(root, filepath.FromSlash(rel))
}

func hashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:]), nil
}
