package artifacts_test

import (
	"encoding/json"
	"testing"

	"docuvid/internal/artifacts"
)

func TestSceneIDDecodesBothWireForms(t *testing.T) {
	var ids []artifacts.SceneID
	if err := json.Unmarshal([]byte(`["the_hook", 3, "42"]`), &ids); err != nil {
		t.Fatalf("unmarshal scene IDs: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 IDs, got %d", len(ids))
	}

	if slug, ok := ids[0].Slug(); !ok || slug != "the_hook" {
		t.Fatalf("expected slug the_hook, got %v", ids[0])
	}
	if n, ok := ids[1].Number(); !ok || n != 3 {
		t.Fatalf("expected numeric 3, got %v", ids[1])
	}
	// A quoted number stays a slug.
	if _, ok := ids[2].Number(); ok {
		t.Fatalf("quoted %q must decode as a slug", "42")
	}
	if ids[2].Key() == artifacts.NumericID(42).Key() {
		t.Fatal("slug \"42\" and numeric 42 must not share a key")
	}
}

func TestSceneIDEncodesItsVariant(t *testing.T) {
	data, err := json.Marshal([]artifacts.SceneID{
		artifacts.SlugID("intro"),
		artifacts.NumericID(7),
	})
	if err != nil {
		t.Fatalf("marshal scene IDs: %v", err)
	}
	if string(data) != `["intro",7]` {
		t.Fatalf("unexpected encoding %s", data)
	}
}

func TestSceneIDZeroValue(t *testing.T) {
	var id artifacts.SceneID
	if !id.IsZero() {
		t.Fatal("zero value must report IsZero")
	}
	if artifacts.NumericID(0).IsZero() {
		t.Fatal("numeric 0 is a real ID, not the zero value")
	}
}

func TestValueDecodeTagsKinds(t *testing.T) {
	var m artifacts.Map
	raw := `{"style":"dark","fps":30,"loop":true,"palette":["#111","#eee"],"fonts":{"body":"Inter"}}`
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal map: %v", err)
	}

	if style, ok := m["style"].AsString(); !ok || style != "dark" {
		t.Fatalf("expected string style, got %v", m["style"])
	}
	if fps, ok := m["fps"].AsNumber(); !ok || fps != 30 {
		t.Fatalf("expected number fps, got %v", m["fps"])
	}
	if loop, ok := m["loop"].AsBool(); !ok || !loop {
		t.Fatalf("expected bool loop, got %v", m["loop"])
	}
	palette, ok := m["palette"].AsList()
	if !ok || len(palette) != 2 {
		t.Fatalf("expected 2-entry palette list, got %v", m["palette"])
	}
	fonts, ok := m["fonts"].AsMap()
	if !ok {
		t.Fatalf("expected nested fonts map, got %v", m["fonts"])
	}
	if body, ok := fonts["body"].AsString(); !ok || body != "Inter" {
		t.Fatalf("expected fonts.body Inter, got %v", fonts["body"])
	}

	// Round-trip back to JSON and decode again; kinds must survive.
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal map: %v", err)
	}
	var again artifacts.Map
	if err := json.Unmarshal(data, &again); err != nil {
		t.Fatalf("unmarshal rendered map: %v", err)
	}
	if again["fps"].Kind() != artifacts.KindNumber {
		t.Fatalf("fps kind changed across round trip: %v", again["fps"].Kind())
	}
}

func TestValueKeepsLargeIntegersExact(t *testing.T) {
	// 2^53 + 1 is not representable as a float64.
	const big = `{"offset":9007199254740993}`

	var m artifacts.Map
	if err := json.Unmarshal([]byte(big), &m); err != nil {
		t.Fatalf("unmarshal map: %v", err)
	}
	if offset, ok := m["offset"].AsInt(); !ok || offset != 9007199254740993 {
		t.Fatalf("expected exact integer offset, got %v", m["offset"])
	}
	if m["offset"].String() != "9007199254740993" {
		t.Fatalf("rendered literal lost precision: %s", m["offset"].String())
	}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal map: %v", err)
	}
	if string(data) != big {
		t.Fatalf("round trip changed the literal: %s", data)
	}

	if offset, ok := artifacts.IntValue(9007199254740993).AsInt(); !ok || offset != 9007199254740993 {
		t.Fatal("IntValue must keep the integer exact")
	}
}

func TestMapSortedKeys(t *testing.T) {
	m := artifacts.Map{
		"zeta":  artifacts.StringValue("z"),
		"alpha": artifacts.StringValue("a"),
		"mid":   artifacts.StringValue("m"),
	}
	keys := m.SortedKeys()
	want := []string{"alpha", "mid", "zeta"}
	for i, key := range want {
		if keys[i] != key {
			t.Fatalf("unexpected key order %v", keys)
		}
	}
}
