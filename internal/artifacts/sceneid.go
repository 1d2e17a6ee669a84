package artifacts

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SceneID identifies a script scene. Stage implementations emit either a
// human-readable slug ("the_impossible_leap") or a bare number; SceneID keeps
// the two variants distinguishable so a slug that happens to look numeric
// never collides with a numeric ID.
type SceneID struct {
	slug    string
	num     int64
	numeric bool
}

// SlugID builds a slug-variant scene ID.
func SlugID(slug string) SceneID {
	return SceneID{slug: strings.TrimSpace(slug)}
}

// NumericID builds a numeric-variant scene ID.
func NumericID(n int64) SceneID {
	return SceneID{num: n, numeric: true}
}

// IsZero reports whether the ID carries neither variant.
func (id SceneID) IsZero() bool {
	return !id.numeric && id.slug == ""
}

// Slug returns the slug payload and whether the ID is the slug variant.
func (id SceneID) Slug() (string, bool) {
	return id.slug, !id.numeric && id.slug != ""
}

// Number returns the numeric payload and whether the ID is the numeric variant.
func (id SceneID) Number() (int64, bool) {
	return id.num, id.numeric
}

// Key returns a string usable as a unique map key across both variants.
func (id SceneID) Key() string {
	if id.numeric {
		return "#" + strconv.FormatInt(id.num, 10)
	}
	return id.slug
}

// String renders the ID for logs and error messages.
func (id SceneID) String() string {
	if id.numeric {
		return strconv.FormatInt(id.num, 10)
	}
	return id.slug
}

// MarshalJSON emits the slug variant as a JSON string and the numeric variant
// as a JSON number, matching what stage implementations produce.
func (id SceneID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return json.Marshal(id.num)
	}
	return json.Marshal(id.slug)
}

// UnmarshalJSON accepts either a string slug or an integer.
func (id *SceneID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*id = SceneID{}
		return nil
	}
	if trimmed[0] == '"' {
		var slug string
		if err := json.Unmarshal(data, &slug); err != nil {
			return err
		}
		*id = SlugID(slug)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("scene id: expected slug or integer: %w", err)
	}
	*id = NumericID(n)
	return nil
}
