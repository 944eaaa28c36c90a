package model

import "strings"

// DefaultMood is assigned to entries saved without an explicit mood.
const DefaultMood = "😊"

// Entry represents a single gratitude journal record.
type Entry struct {
	ID      string   `json:"id"`
	Date    string   `json:"date"`
	G1      string   `json:"g1"`
	G2      string   `json:"g2"`
	G3      string   `json:"g3"`
	Notes   string   `json:"notes"`
	Mood    string   `json:"mood"`
	Tags    []string `json:"tags"`
	Feel    string   `json:"feel"`
	SavedAt int64    `json:"savedAt"`
}

// Draft holds the raw field values supplied by the user for a create or update.
// Tags is the unparsed comma-separated input.
type Draft struct {
	Date  string
	G1    string
	G2    string
	G3    string
	Notes string
	Mood  string
	Tags  string
	Feel  string
}

// DraftOf returns the editable form of e, with tags joined as they would be typed.
func DraftOf(e Entry) Draft {
	return Draft{
		Date:  e.Date,
		G1:    e.G1,
		G2:    e.G2,
		G3:    e.G3,
		Notes: e.Notes,
		Mood:  e.Mood,
		Tags:  strings.Join(e.Tags, ", "),
		Feel:  e.Feel,
	}
}

// ParseTags splits a comma-separated tag string, trimming each piece and
// discarding empty ones. The result is never nil.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// CleanTags drops empty strings from tags and guarantees a non-nil slice.
func CleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// SearchText is the lowercased haystack used for free-text filtering.
func (e Entry) SearchText() string {
	return strings.ToLower(strings.Join([]string{
		e.G1, e.G2, e.G3, e.Notes, strings.Join(e.Tags, ","), e.Mood, e.Feel,
	}, " "))
}

// Preview joins the non-empty gratitude lines for one-line display.
func (e Entry) Preview() string {
	parts := []string{}
	for _, g := range []string{e.G1, e.G2, e.G3} {
		if g != "" {
			parts = append(parts, g)
		}
	}
	return strings.Join(parts, " • ")
}
