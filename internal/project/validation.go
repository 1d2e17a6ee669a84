package project

import (
	"fmt"

	"docuvid/internal/artifacts"
)

type violations struct {
	found []string
}

func projectCheck() *violations { return &violations{} }

func (v *violations) addf(format string, args ...any) {
	v.found = append(v.found, fmt.Sprintf(format, args...))
}

func (v *violations) err() error {
	if len(v.found) == 0 {
		return nil
	}
	return &artifacts.ValidationError{Artifact: "video project", Violations: v.found}
}
