package release

import (
	"fmt"
	"os"

	"github.com/ruru-project/ruru/pkg/version"
)

// DefaultMarkerPath is where the computed version is written for downstream
// build steps.
const DefaultMarkerPath = ".release-version"

// WriteMarker writes the released version to the marker file, overwriting
// any previous run's value.
func WriteMarker(path string, tag version.Tag) error {
	if err := os.WriteFile(path, []byte(tag.String()+"\n"), 0o644); err != nil {
		return fmt.Errorf("write marker %s: %w", path, err)
	}
	return nil
}
