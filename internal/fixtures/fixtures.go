// Package fixtures holds canned API responses used by the fixture transport.
//
// Each embedded JSON file is named after a service and maps method names to
// the decoded value that service/method pair should return.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
)

//go:embed data/*.json
var dataFS embed.FS

var (
	loadOnce  sync.Once
	loadErr   error
	byService map[string]map[string]json.RawMessage
)

func load() error {
	loadOnce.Do(func() {
		byService = make(map[string]map[string]json.RawMessage)
		entries, err := fs.ReadDir(dataFS, "data")
		if err != nil {
			loadErr = fmt.Errorf("read fixture directory: %w", err)
			return
		}
		for _, entry := range entries {
			raw, err := dataFS.ReadFile(path.Join("data", entry.Name()))
			if err != nil {
				loadErr = fmt.Errorf("read fixture %s: %w", entry.Name(), err)
				return
			}
			methods := make(map[string]json.RawMessage)
			if err := json.Unmarshal(raw, &methods); err != nil {
				loadErr = fmt.Errorf("parse fixture %s: %w", entry.Name(), err)
				return
			}
			service := strings.TrimSuffix(entry.Name(), ".json")
			byService[service] = methods
		}
	})
	return loadErr
}

// Get returns the canned response for a service/method pair. Each call
// decodes a fresh value so callers cannot mutate shared fixture data.
func Get(service, method string) (any, bool) {
	if err := load(); err != nil {
		return nil, false
	}
	methods, ok := byService[service]
	if !ok {
		return nil, false
	}
	raw, ok := methods[method]
	if !ok {
		return nil, false
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, false
	}
	return value, true
}
