package editor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var fallbackEditors = []string{"vim", "nano", "vi"}

// EditFile opens path in the system editor and waits for it to exit
func EditFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	editorPath, args, err := GetEditorPath()
	if err != nil {
		return err
	}

	cmd := exec.Command(editorPath, append(args, path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Run the editor (this blocks until the editor exits)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}
	return nil
}

// GetEditorPath returns the editor executable and any arguments given in
// $EDITOR (e.g. "code --wait")
func GetEditorPath() (string, []string, error) {
	fields := strings.Fields(os.Getenv("EDITOR"))
	if len(fields) == 0 {
		// Try common editors
		for _, e := range fallbackEditors {
			if path, err := exec.LookPath(e); err == nil {
				return path, nil, nil
			}
		}
		return "", nil, fmt.Errorf("no editor found. Please set EDITOR environment variable")
	}

	editor, args := fields[0], fields[1:]

	// If editor is a full path, return it
	if filepath.IsAbs(editor) {
		return editor, args, nil
	}

	// Otherwise, look it up in PATH
	path, err := exec.LookPath(editor)
	if err != nil {
		return "", nil, fmt.Errorf("editor '%s' not found in PATH: %w", editor, err)
	}

	return path, args, nil
}
