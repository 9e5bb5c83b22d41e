package destination

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const yamlDataset = `
destinations:
  - id: munnar
    name: Munnar
    state: Kerala
    description: Tea country in the Western Ghats.
    transportOptions:
      - type: bus
        from: Kochi
        to: Munnar
        cost: 250
        operators: [KSRTC]
    averageBudget:
      budget: 1800
      standard: 3500
      luxury: 9000
`

type fakeFetcher struct {
	objects map[string][]byte
}

func (f *fakeFetcher) Download(ctx context.Context, key string) ([]byte, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return data, nil
}

func TestParseDataset_YAML(t *testing.T) {
	list, err := ParseDataset([]byte(yamlDataset), ".yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 destination, got %d", len(list))
	}

	d := list[0]
	if d.ID != "munnar" || d.AverageBudget.Standard != 3500 {
		t.Errorf("unexpected destination: %+v", d)
	}
	if len(d.TransportOptions) != 1 || d.TransportOptions[0].Cost != 250 {
		t.Errorf("unexpected transport: %+v", d.TransportOptions)
	}
}

func TestParseDataset_JSONList(t *testing.T) {
	data, err := json.Marshal(SampleDestinations())
	if err != nil {
		t.Fatal(err)
	}

	list, err := ParseDataset(data, ".JSON")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 || list[2].ID != "goa" {
		t.Fatalf("unexpected dataset: %d entries", len(list))
	}
}

func TestParseDataset_JSONObject(t *testing.T) {
	data := []byte(`{"destinations":[{"id":"hampi","name":"Hampi","averageBudget":{"budget":1000,"standard":2500,"luxury":6000}}]}`)

	list, err := ParseDataset(data, ".json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].AverageBudget.Luxury != 6000 {
		t.Fatalf("unexpected dataset: %+v", list)
	}
}

func TestParseDataset_Rejects(t *testing.T) {
	if _, err := ParseDataset([]byte("[]"), ".csv"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := ParseDataset([]byte(`[{"name":"no id"}]`), ".json"); err == nil {
		t.Error("expected error for entry without id")
	}
	if _, err := ParseDataset([]byte(`{not json`), ".json"); err == nil {
		t.Error("expected error for malformed json")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yml")
	if err := os.WriteFile(path, []byte(yamlDataset), 0o600); err != nil {
		t.Fatal(err)
	}

	list, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Munnar" {
		t.Fatalf("unexpected dataset: %+v", list)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadObject(t *testing.T) {
	fetcher := &fakeFetcher{objects: map[string][]byte{
		"catalog/destinations.yaml": []byte(yamlDataset),
	}}

	list, err := LoadObject(context.Background(), fetcher, "catalog/destinations.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 destination, got %d", len(list))
	}

	if _, err := LoadObject(context.Background(), fetcher, "catalog/missing.json"); err == nil {
		t.Error("expected error for missing object")
	}
}
