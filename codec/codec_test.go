package codec

import (
	"errors"
	"testing"

	"github.com/dshills/confstore"
)

func TestUnmarshalTOML(t *testing.T) {
	seed, err := UnmarshalTOML([]byte(`
name = "svc"
port = 8080
verbose = true
`))
	if err != nil {
		t.Fatalf("UnmarshalTOML failed: %v", err)
	}

	s, err := confstore.New(seed)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if v, _ := s.GetString("name"); v != "svc" {
		t.Errorf("name = %q, want 'svc'", v)
	}
	if v, _ := s.GetInt("port"); v != 8080 {
		t.Errorf("port = %d, want 8080", v)
	}
	if v, _ := s.GetBool("verbose"); !v {
		t.Error("verbose = false, want true")
	}
}

func TestUnmarshalTOML_Invalid(t *testing.T) {
	_, err := UnmarshalTOML([]byte(`name = `))
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
	if decodeErr.Format != "toml" {
		t.Errorf("Format = %q, want 'toml'", decodeErr.Format)
	}
}

func TestUnmarshalYAML(t *testing.T) {
	seed, err := UnmarshalYAML([]byte(`
name: svc
port: 8080
tags:
  - a
  - b
`))
	if err != nil {
		t.Fatalf("UnmarshalYAML failed: %v", err)
	}

	s, err := confstore.New(seed)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if v, _ := s.GetString("name"); v != "svc" {
		t.Errorf("name = %q, want 'svc'", v)
	}
	tags, err := s.GetStringSlice("tags")
	if err != nil || len(tags) != 2 {
		t.Errorf("tags = %v, %v", tags, err)
	}
}

func TestUnmarshalYAML_Invalid(t *testing.T) {
	if _, err := UnmarshalYAML([]byte("a: [unclosed")); err == nil {
		t.Error("expected decode error")
	}
}

func TestUnmarshalJSON(t *testing.T) {
	seed, err := UnmarshalJSON([]byte(`{"name":"svc","port":8080,"verbose":true}`))
	if err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}

	s, err := confstore.New(seed)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// JSON numbers decode as float64 but still classify as numbers
	if v, _ := s.GetInt("port"); v != 8080 {
		t.Errorf("port = %d, want 8080", v)
	}
	if err := s.Set("port", 9090); err != nil {
		t.Errorf("Set numeric after JSON seed failed: %v", err)
	}
}

func TestUnmarshalJSON_Invalid(t *testing.T) {
	if _, err := UnmarshalJSON([]byte(`{bad`)); err == nil {
		t.Error("expected decode error for invalid JSON")
	}
	if _, err := UnmarshalJSON([]byte(`[1,2]`)); err == nil {
		t.Error("expected decode error for non-object document")
	}
}

func TestMarshalJSON(t *testing.T) {
	s, err := confstore.New(map[string]any{
		"name":    "svc",
		"port":    8080,
		"nested":  map[string]any{"a": 1},
		"dotted.": "kept flat",
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	out, err := MarshalJSON(s)
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	round, err := UnmarshalJSON(out)
	if err != nil {
		t.Fatalf("round trip decode failed: %v", err)
	}
	if round["name"] != "svc" {
		t.Errorf("name = %v, want 'svc'", round["name"])
	}
	if _, ok := round["dotted."]; !ok {
		t.Errorf("dotted key was not kept flat: %v", round)
	}
	nested, ok := round["nested"].(map[string]any)
	if !ok || nested["a"] != float64(1) {
		t.Errorf("nested = %v", round["nested"])
	}
}

func TestApplyJSON(t *testing.T) {
	s, err := confstore.New(map[string]any{"name": "svc", "port": 8080})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := ApplyJSON(s, []byte(`{"name":"other","port":9090}`)); err != nil {
		t.Fatalf("ApplyJSON failed: %v", err)
	}
	if v, _ := s.GetString("name"); v != "other" {
		t.Errorf("name = %q, want 'other'", v)
	}
	if v, _ := s.GetInt("port"); v != 9090 {
		t.Errorf("port = %d, want 9090", v)
	}
}

func TestApplyJSON_PropagatesWriteErrors(t *testing.T) {
	s, err := confstore.New(map[string]any{"port": 8080})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := ApplyJSON(s, []byte(`{"port":"not a number"}`)); !errors.Is(err, confstore.ErrTypeMismatch) {
		t.Errorf("ApplyJSON = %v, want ErrTypeMismatch", err)
	}
}
