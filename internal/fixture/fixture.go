// Package fixture renders a TrajectorySet as a TypeScript export and appends it to a
// storybook fixture file.
package fixture

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cxd309/trajgen/internal/robot"
)

// DefaultPath is the fixture file the storybook imports default trajectories from.
const DefaultPath = "utils-default-traj.tsx"

// ErrEmptyName is returned when the export name is blank.
var ErrEmptyName = errors.New("export name must not be empty")

// Writer appends a named export to a fixture. Implementations reject an empty
// name with ErrEmptyName before writing anything.
type Writer interface {
	Append(name string, set robot.TrajectorySet) error
}

// Render returns the block appended for one export:
//
//	\nexport const <name> = <literal>
//
// The literal is indented JSON, which is also a valid TypeScript object literal.
// Keys keep the declaration order of the robot types.
func Render(name string, set robot.TrajectorySet) ([]byte, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	literal, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("rendering %q: %w", name, err)
	}
	block := make([]byte, 0, len(literal)+len(name)+16)
	block = fmt.Appendf(block, "\nexport const %s = ", name)
	block = append(block, literal...)
	return block, nil
}

// FileWriter appends exports to a file on disk, creating it if needed.
type FileWriter struct {
	Path string
}

var _ Writer = (*FileWriter)(nil)

// NewFileWriter returns a FileWriter for path.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{Path: filepath.Clean(path)}
}

// Append renders set under name and appends it to the file with one write.
// Nothing is written when rendering fails.
func (fw *FileWriter) Append(name string, set robot.TrajectorySet) error {
	block, err := Render(name, set)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(fw.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening fixture %s: %w", fw.Path, err)
	}
	if _, err := f.Write(block); err != nil {
		f.Close()
		return fmt.Errorf("appending to fixture %s: %w", fw.Path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing fixture %s: %w", fw.Path, err)
	}
	return nil
}
