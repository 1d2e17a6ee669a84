package artifacts

import "strings"

// GeneratedAssets records the side-files produced for a storyboard, keyed by
// scene ID. Keys are soft references into the owning storyboard's scene
// sequence.
type GeneratedAssets struct {
	AudioPaths     map[string]string `json:"audio_paths,omitempty"`
	AnimationPaths map[string]string `json:"animation_paths,omitempty"`
	ImagePaths     map[string]string `json:"image_paths,omitempty"`
}

// Empty reports whether no assets have been recorded.
func (a *GeneratedAssets) Empty() bool {
	return len(a.AudioPaths) == 0 && len(a.AnimationPaths) == 0 && len(a.ImagePaths) == 0
}

// Validate checks that keys and paths are non-empty strings.
func (a *GeneratedAssets) Validate() error {
	v := check("generated assets")
	checkPaths := func(label string, paths map[string]string) {
		for sceneID, path := range paths {
			if strings.TrimSpace(sceneID) == "" {
				v.addf("%s: empty scene_id key", label)
			}
			if strings.TrimSpace(path) == "" {
				v.addf("%s[%s]: empty path", label, sceneID)
			}
		}
	}
	checkPaths("audio_paths", a.AudioPaths)
	checkPaths("animation_paths", a.AnimationPaths)
	checkPaths("image_paths", a.ImagePaths)
	return v.err()
}

// ValidateFor additionally checks every key against the owning storyboard's
// scene IDs; assets for scenes the storyboard does not contain are rejected.
func (a *GeneratedAssets) ValidateFor(board *Storyboard) error {
	if err := a.Validate(); err != nil {
		return err
	}
	v := check("generated assets")
	if board == nil {
		if !a.Empty() {
			v.addf("assets present without an owning storyboard")
		}
		return v.err()
	}
	known := board.SceneIDs()
	checkKeys := func(label string, paths map[string]string) {
		for sceneID := range paths {
			if _, ok := known[sceneID]; !ok {
				v.addf("%s: scene_id %q not present in storyboard", label, sceneID)
			}
		}
	}
	checkKeys("audio_paths", a.AudioPaths)
	checkKeys("animation_paths", a.AnimationPaths)
	checkKeys("image_paths", a.ImagePaths)
	return v.err()
}
