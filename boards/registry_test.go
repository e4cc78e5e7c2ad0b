package boards

import (
	"testing"

	"github.com/habs-ai/brainmeta/schema"
	"github.com/habs-ai/brainmeta/validate"
)

func TestByID(t *testing.T) {
	b, ok := ByID("MUSE_S")
	if !ok || b.Name != "Muse S" {
		t.Fatalf("expected Muse S, got %+v (ok=%v)", b, ok)
	}
	if !b.HasChannel("TP9") || b.HasChannel("Cz") {
		t.Fatalf("unexpected channel set: %v", b.EEGChannels)
	}
	if _, ok := ByID("CYTON"); ok {
		t.Fatalf("unknown board must not resolve")
	}
}

func TestSessionRegistry_Has(t *testing.T) {
	reg := NewSessionRegistry()
	reg.Bind("s1", MuseS)

	if !reg.Has("s1", "Fp1") {
		t.Fatalf("Fp1 must be known to a Muse S session")
	}
	if reg.Has("s1", "O1") {
		t.Fatalf("O1 is not a Muse S channel")
	}
	if reg.Has("s2", "Fp1") {
		t.Fatalf("unbound session must report no channels")
	}

	// Rebinding replaces the layout.
	reg.Bind("s1", Synthetic)
	if reg.Has("s1", "Fp1") || !reg.Has("s1", "O1") {
		t.Fatalf("rebinding must replace the channel set")
	}
}

func TestSessionRegistry_BacksValidatorAdvisories(t *testing.T) {
	reg := NewSessionRegistry()
	reg.Bind("s1", Muse2)

	v, err := validate.Default(validate.WithChannelRegistry(reg))
	if err != nil {
		t.Fatalf("validate.Default: %v", err)
	}
	res, err := v.Validate(map[string]any{
		"session_id":  "s1",
		"start_time":  "2024-01-01T09:00:00Z",
		"end_time":    "2024-01-01T10:00:00Z",
		"channel_ids": []string{"TP10", "POz"},
		"tags":        []any{map[string]any{"tag": "eyes_closed"}},
	}, schema.KindTaggedInterval, schema.V2)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !res.OK {
		t.Fatalf("expected ok, got %v", res.Errors)
	}
	var flagged []string
	for _, a := range res.Advisories {
		flagged = append(flagged, a.Path)
	}
	wantMiss := "channel_ids[1]"
	var found bool
	for _, p := range flagged {
		if p == wantMiss {
			found = true
		}
		if p == "channel_ids[0]" {
			t.Fatalf("TP10 is a Muse 2 channel, must not be flagged: %v", flagged)
		}
	}
	if !found {
		t.Fatalf("expected advisory at %s, got %v", wantMiss, flagged)
	}
}
