package favicongen

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Target is one destination of the favicon, relative to the project root.
type Target struct {
	Path   string
	Before string // printed with the absolute path before writing, if set
	After  string // printed after writing; receives the path and the byte count
}

// Targets are written in order; a failure stops the run before later targets.
var Targets = []Target{
	{
		Path:   filepath.Join("frontend", "public", "favicon.ico"),
		Before: "Creating favicon at: %s\n",
		After:  "Favicon created successfully! (%[2]d bytes)\n",
	},
	{
		Path:  filepath.Join("static", "favicon.ico"),
		After: "Favicon copied to static folder: %[1]s\n",
	},
}

// Result describes one written file.
type Result struct {
	Path   string
	Bytes  int
	SHA256 string
}

// Emitter writes favicon data under Root. Out receives the progress lines.
type Emitter struct {
	Root string
	Out  io.Writer
	Log  *slog.Logger
}

// Emit writes data to every target, overwriting existing files. Missing
// directories are not created.
func (e *Emitter) Emit(ctx context.Context, data []byte) ([]Result, error) {
	out := e.Out
	if out == nil {
		out = io.Discard
	}
	log := e.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	sum := sha256.Sum256(data)
	digest := hex.EncodeToString(sum[:])

	var results []Result
	for _, t := range Targets {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		path := filepath.Join(e.Root, t.Path)
		if t.Before != "" {
			fmt.Fprintf(out, t.Before, path)
		}
		log.Debug("Writing favicon", "path", path)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return results, fmt.Errorf("failed to write favicon: %w", err)
		}
		fmt.Fprintf(out, t.After, path, len(data))
		log.Info("Favicon written", "path", path, "bytes", len(data), "sha256", digest)
		results = append(results, Result{Path: path, Bytes: len(data), SHA256: digest})
	}
	return results, nil
}
