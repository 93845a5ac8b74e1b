package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCounterNameAndFormatName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix string
		st     SampleType
		id     int64
		want   string
	}{
		{"YC", SampleTypeBacterium, 1, "YCe1"},
		{"YC", SampleTypePrimer, 42, "YCp42"},
		{"AB", SampleTypeYeast, 7, "ABy7"},
		{"AB", SampleTypeOther, 10, "ABx10"},
	}

	for _, tt := range tests {
		got := FormatName(CounterName(tt.prefix, tt.st), tt.id)
		if got != tt.want {
			t.Errorf("FormatName(CounterName(%q, %q), %d) = %q, want %q", tt.prefix, tt.st, tt.id, got, tt.want)
		}
	}
}

func TestPart_OlderThan(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	week := 7 * 24 * time.Hour

	fresh := Part{CreatedAt: now.Add(-6 * 24 * time.Hour)}
	if fresh.OlderThan(week, now) {
		t.Error("6-day-old part must not be older than a week")
	}

	old := Part{CreatedAt: now.Add(-8 * 24 * time.Hour)}
	if !old.OlderThan(week, now) {
		t.Error("8-day-old part must be older than a week")
	}
}

func TestPart_IsOwnedBy(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	p := Part{OwnerID: owner}
	if !p.IsOwnedBy(owner) {
		t.Error("expected owner match")
	}
	if p.IsOwnedBy(uuid.New()) {
		t.Error("expected stranger mismatch")
	}
}

func TestPart_Clone_IsDeep(t *testing.T) {
	t.Parallel()

	name := "pUC19"
	d := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	p := Part{
		SampleType: SampleTypeBacterium,
		Tags:       []string{"a"},
		Date:       &d,
		Content: Content{
			Typed:      BacteriumContent{PlasmidName: &name, Markers: []string{"AmpR"}},
			CustomData: map[string]any{"k": "v"},
		},
		Attachments: []AttachmentRef{{FileName: "f.txt"}},
	}

	c := p.Clone()
	p.Tags[0] = "changed"
	p.Attachments[0].FileName = "changed"
	p.Content.CustomData["k"] = "changed"
	p.Content.Typed.(BacteriumContent).Markers[0] = "changed"
	*p.Date = d.Add(time.Hour)

	if c.Tags[0] != "a" {
		t.Errorf("clone tags mutated: %v", c.Tags)
	}
	if c.Attachments[0].FileName != "f.txt" {
		t.Errorf("clone attachments mutated: %v", c.Attachments)
	}
	if c.Content.CustomData["k"] != "v" {
		t.Errorf("clone custom data mutated: %v", c.Content.CustomData)
	}
	if got := c.Content.Typed.(BacteriumContent).Markers[0]; got != "AmpR" {
		t.Errorf("clone markers mutated: %q", got)
	}
	if !c.Date.Equal(d) {
		t.Errorf("clone date mutated: %v", c.Date)
	}
}
