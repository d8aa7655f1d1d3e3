package core

import (
	"errors"
	"testing"
)

func testCollection() PluginCollection {
	return PluginCollection{
		"zeta": {Name: "Zeta", Author: "Team Z", Description: "Last plugin", URL: "https://github.com/z/zeta"},
		"alpha": {
			Name:          "Alpha Search",
			Author:        "Dev Tester",
			Description:   "Search bar helper",
			DescriptionZh: "搜索栏助手",
			URL:           "https://github.com/a/alpha",
		},
		"mid": {Name: "Middle", Author: "Sharwapi Team", Description: "Data visualization", URL: "https://github.com/m/mid"},
	}
}

func TestEntities(t *testing.T) {
	c := testCollection()
	list := c.Entities()

	if len(list) != len(c) {
		t.Fatalf("len(Entities) = %d, want %d", len(list), len(c))
	}

	wantOrder := []string{"alpha", "mid", "zeta"}
	for i, e := range list {
		if e.ID != wantOrder[i] {
			t.Errorf("list[%d].ID = %q, want %q", i, e.ID, wantOrder[i])
		}
		if e.PluginMeta != c[e.ID] {
			t.Errorf("list[%d] meta = %+v, want %+v", i, e.PluginMeta, c[e.ID])
		}
	}
}

func TestEntities_Empty(t *testing.T) {
	var c PluginCollection
	if list := c.Entities(); len(list) != 0 {
		t.Errorf("Entities of nil collection = %v, want empty", list)
	}
}

func TestCloneAndEqual(t *testing.T) {
	c := testCollection()
	clone := c.Clone()
	if !c.Equal(clone) {
		t.Fatal("clone should equal original")
	}

	clone["alpha"] = PluginMeta{Name: "changed"}
	if c.Equal(clone) {
		t.Error("modified clone should differ")
	}
	if c["alpha"].Name != "Alpha Search" {
		t.Error("modifying clone changed the original")
	}

	var nilColl PluginCollection
	if !nilColl.Equal(PluginCollection{}) {
		t.Error("nil and empty collections should be equal")
	}
}

func TestLocalizedDescription(t *testing.T) {
	c := testCollection()

	tests := []struct {
		id     string
		locale string
		want   string
	}{
		{"alpha", "zh-CN", "搜索栏助手"},
		{"alpha", "zh-TW", "搜索栏助手"},
		{"alpha", "en-US", "Search bar helper"},
		{"mid", "zh-CN", "Data visualization"},
		{"mid", "", "Data visualization"},
	}

	for _, tt := range tests {
		t.Run(tt.id+"/"+tt.locale, func(t *testing.T) {
			if got := c[tt.id].LocalizedDescription(tt.locale); got != tt.want {
				t.Errorf("LocalizedDescription(%q) = %q, want %q", tt.locale, got, tt.want)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	list := testCollection().Entities()

	tests := []struct {
		term string
		want []string
	}{
		{"", []string{"alpha", "mid", "zeta"}},
		{"   ", []string{"alpha", "mid", "zeta"}},
		{"search", []string{"alpha"}},
		{"SHARWAPI", []string{"mid"}},
		{"team", []string{"mid", "zeta"}},
		{"搜索", []string{"alpha"}},
		{"plugin", []string{"zeta"}},
		{"nothing matches", nil},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := Search(list, tt.term)
			if len(got) != len(tt.want) {
				t.Fatalf("Search(%q) returned %d entries, want %d", tt.term, len(got), len(tt.want))
			}
			for i, e := range got {
				if e.ID != tt.want[i] {
					t.Errorf("Search(%q)[%d] = %q, want %q", tt.term, i, e.ID, tt.want[i])
				}
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	if got := ErrorMessage(nil); got != "" {
		t.Errorf("ErrorMessage(nil) = %q, want empty", got)
	}
	if got := ErrorMessage(&FetchStatusError{StatusCode: 404}); got != "HTTP error! status: 404" {
		t.Errorf("ErrorMessage = %q", got)
	}
	if got := ErrorMessage(errors.New("")); got != "failed to fetch plugins" {
		t.Errorf("ErrorMessage(empty) = %q, want generic fallback", got)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")

	for _, err := range []error{
		&FetchTransportError{URL: "u", Err: cause},
		&ParseError{URL: "u", Err: cause},
		&MockLoadError{Err: cause},
	} {
		if !errors.Is(err, cause) {
			t.Errorf("%T does not unwrap to its cause", err)
		}
	}
}
