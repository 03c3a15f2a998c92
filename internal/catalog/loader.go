package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the catalog is persisted when no path is configured
const DefaultPath = "models/skills_database.json"

// Loader performs the one-time load-or-bootstrap of a catalog file.
// Every call to Load after the first returns the same snapshot.
type Loader struct {
	path string

	once sync.Once
	cat  *Catalog
	err  error
}

// NewLoader creates a loader for the given catalog path
func NewLoader(path string) *Loader {
	if path == "" {
		path = DefaultPath
	}
	return &Loader{path: path}
}

// Path returns the catalog file path
func (l *Loader) Path() string {
	return l.path
}

// Load returns the catalog, reading or bootstrapping it on first use
func (l *Loader) Load() (*Catalog, error) {
	l.once.Do(func() {
		l.cat, l.err = LoadOrBootstrap(l.path)
	})
	return l.cat, l.err
}

// LoadOrBootstrap reads the catalog document at path. When the file does not
// exist, the built-in defaults are written there and returned. A file that
// exists but cannot be parsed is left untouched and the defaults are used.
func LoadOrBootstrap(path string) (*Catalog, error) {
	doc, err := ReadDocument(path)
	if err == nil {
		cat, err := New(doc, DefaultResources())
		if err != nil {
			return nil, err
		}
		log.Printf("[CATALOG] Loaded %d positions from %s", cat.Len(), path)
		return cat, nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		log.Printf("[CATALOG] Could not load catalog, using built-in defaults: %v", err)
		return Default(), nil
	}

	cat := Default()
	if err := WriteDocument(path, cat.Document()); err != nil {
		// The defaults are still usable without persistence
		log.Printf("[CATALOG] Could not save catalog: %v", err)
	} else {
		log.Printf("[CATALOG] Bootstrapped default catalog at %s", path)
	}
	return cat, nil
}

// ReadDocument reads a JSON or YAML catalog document. The format is chosen
// from the file extension (.yaml/.yml, anything else is JSON).
func ReadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	var doc Document
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, &LoadError{Path: path, Message: "failed to parse YAML", Cause: err}
		}
	} else {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, &LoadError{Path: path, Message: "failed to parse JSON", Cause: err}
		}
	}

	if doc == nil {
		return nil, &LoadError{Path: path, Message: "document is empty"}
	}
	return doc, nil
}

// WriteDocument persists a catalog document, creating parent directories as needed
func WriteDocument(path string, doc Document) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return &SaveError{Path: path, Cause: fmt.Errorf("failed to encode document: %w", err)}
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &SaveError{Path: path, Cause: err}
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &SaveError{Path: path, Cause: err}
	}
	return nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
