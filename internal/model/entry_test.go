package model_test

import (
	"reflect"
	"testing"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/model"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{}},
		{"family", []string{"family"}},
		{" family , health ,", []string{"family", "health"}},
		{",,  ,", []string{}},
		{"a,a", []string{"a", "a"}},
	}
	for _, tt := range tests {
		got := model.ParseTags(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseTags(%q) = %#v, want %#v", tt.input, got, tt.want)
		}
	}
}

func TestCleanTags(t *testing.T) {
	got := model.CleanTags([]string{"", "x", "", "y"})
	if !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Errorf("CleanTags = %#v", got)
	}
	if got := model.CleanTags(nil); got == nil || len(got) != 0 {
		t.Errorf("CleanTags(nil) = %#v, want empty non-nil", got)
	}
}

func TestSearchText(t *testing.T) {
	e := model.Entry{G1: "Sun", Notes: "Felt CALM", Tags: []string{"a", "b"}, Mood: "😊", Feel: "Light"}
	want := "sun   felt calm a,b 😊 light"
	if got := e.SearchText(); got != want {
		t.Errorf("SearchText = %q, want %q", got, want)
	}
}

func TestDraftOfJoinsTags(t *testing.T) {
	d := model.DraftOf(model.Entry{Date: "2026-02-27", Tags: []string{"x", "y"}})
	if d.Tags != "x, y" {
		t.Errorf("Tags = %q, want %q", d.Tags, "x, y")
	}
	if d.Date != "2026-02-27" {
		t.Errorf("Date = %q", d.Date)
	}
}

func TestPreview(t *testing.T) {
	e := model.Entry{G1: "one", G3: "three"}
	if got := e.Preview(); got != "one • three" {
		t.Errorf("Preview = %q", got)
	}
}
