package core

import (
	"context"
	"errors"
	"testing"
)

type stubSource struct {
	baseURL string
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) FetchCollection(ctx context.Context) (PluginCollection, error) {
	return PluginCollection{}, nil
}

func TestRegisterAndNew(t *testing.T) {
	Register("stub", "https://example.com/plugins.json", func(baseURL string, client *Client) Source {
		return &stubSource{baseURL: baseURL}
	})

	src, err := New("stub", "", nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := src.(*stubSource).baseURL; got != "https://example.com/plugins.json" {
		t.Errorf("baseURL = %q, want default", got)
	}

	src, err = New("stub", "https://mirror.example.com/plugins.json", nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := src.(*stubSource).baseURL; got != "https://mirror.example.com/plugins.json" {
		t.Errorf("baseURL = %q, want override", got)
	}

	if DefaultURL("stub") != "https://example.com/plugins.json" {
		t.Errorf("DefaultURL = %q", DefaultURL("stub"))
	}

	found := false
	for _, name := range SupportedSources() {
		if name == "stub" {
			found = true
		}
	}
	if !found {
		t.Errorf("SupportedSources() = %v, missing stub", SupportedSources())
	}
}

func TestNewUnknown(t *testing.T) {
	_, err := New("does-not-exist", "", nil)
	if !errors.Is(err, ErrUnknownSource) {
		t.Errorf("New error = %v, want ErrUnknownSource", err)
	}
}
