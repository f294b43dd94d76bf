package render

import (
	"fmt"
	"os"
)

// Save writes the figure to name, creating or replacing the file. Writing
// the one artifact is the pipeline's sole side effect; prior artifacts with
// the same name are intentionally replaced, never versioned.
func Save(f *Figure, name string) error {
	out, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create artifact: %w", err)
	}

	if err := f.Render(out); err != nil {
		out.Close()
		return fmt.Errorf("write artifact %s: %w", name, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close artifact %s: %w", name, err)
	}
	return nil
}
