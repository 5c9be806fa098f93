package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Writer persists rendered reports under a directory, one file per node.
type Writer struct {
	dir    string
	logger *slog.Logger
}

func NewWriter(dir string, logger *slog.Logger) *Writer {
	return &Writer{
		dir:    dir,
		logger: logger,
	}
}

// Write stores the rendered text for a node, overwriting any previous
// report. Returns the path of the written file.
func (w *Writer) Write(nodeName, text string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create reports directory %s: %w", w.dir, err)
	}

	filename := "node_" + SanitizeName(nodeName) + ".txt"
	path := filepath.Join(w.dir, filename)

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report for %s: %w", nodeName, err)
	}

	w.logger.Info("written node report", "node", nodeName, "file", filename)
	return path, nil
}

// SanitizeName makes a node name safe for use in a filename by replacing
// spaces and forward slashes with underscores.
func SanitizeName(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	return strings.ReplaceAll(name, "/", "_")
}
