package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrNoEditor is returned when neither VISUAL nor EDITOR is set.
var ErrNoEditor = errors.New("EDITOR not set; set it to edit the cart document")

// EditInEditor writes content to a temporary file, opens it in the user's
// editor and returns the saved result. suffix picks the file extension
// (".json" gives editors syntax highlighting).
func EditInEditor(content []byte, suffix string) ([]byte, error) {
	editor := editorCommand()
	if len(editor) == 0 {
		return nil, ErrNoEditor
	}

	tmpFile, err := os.CreateTemp("", "cart-*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	_, writeErr := tmpFile.Write(content)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		return nil, fmt.Errorf("failed to write temp file: %w", writeErr)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", closeErr)
	}

	cmd := exec.Command(editor[0], append(editor[1:], tmpPath)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return nil, fmt.Errorf("failed to run editor: %w", err)
	}

	result, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}
	return result, nil
}

// editorCommand returns the editor and its arguments (e.g. "code --wait").
// VISUAL wins over EDITOR.
func editorCommand() []string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return strings.Fields(v)
		}
	}
	return nil
}
