package destination

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// dataset accepts either a bare list or {"destinations": [...]}.
type dataset struct {
	Destinations []Destination `json:"destinations" yaml:"destinations"`
}

// ObjectFetcher downloads a dataset object from bucket storage.
type ObjectFetcher interface {
	Download(ctx context.Context, key string) ([]byte, error)
}

// LoadFile reads a JSON or YAML dataset from disk.
func LoadFile(path string) ([]Destination, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	return ParseDataset(data, filepath.Ext(path))
}

// LoadObject reads a dataset from object storage; the key extension picks the format.
func LoadObject(ctx context.Context, fetcher ObjectFetcher, key string) ([]Destination, error) {
	data, err := fetcher.Download(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("downloading dataset %s: %w", key, err)
	}
	return ParseDataset(data, filepath.Ext(key))
}

// ParseDataset decodes data according to ext (".json", ".yaml" or ".yml").
func ParseDataset(data []byte, ext string) ([]Destination, error) {
	var (
		list []Destination
		err  error
	)

	switch strings.ToLower(ext) {
	case ".json":
		list, err = decodeJSON(data)
	case ".yaml", ".yml":
		list, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}

	for i, d := range list {
		if strings.TrimSpace(d.ID) == "" {
			return nil, fmt.Errorf("parsing dataset: entry %d has no id", i)
		}
	}
	return list, nil
}

func decodeJSON(data []byte) ([]Destination, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var list []Destination
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var ds dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, err
	}
	return ds.Destinations, nil
}

func decodeYAML(data []byte) ([]Destination, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	if node.Content[0].Kind == yaml.SequenceNode {
		var list []Destination
		if err := node.Content[0].Decode(&list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var ds dataset
	if err := node.Content[0].Decode(&ds); err != nil {
		return nil, err
	}
	return ds.Destinations, nil
}
