package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-brandkit/internal/fileutil"
	"github.com/alnah/go-brandkit/internal/hints"
	"github.com/alnah/go-brandkit/internal/logger"
)

// writeOutput prints content to stdout, or writes it atomically to
// out.path. A trailing newline is added when missing.
func writeOutput(w io.Writer, out outputFlags, content string, log *logger.Logger) error {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if out.path == "" {
		_, err := io.WriteString(w, content)
		return err
	}

	err := fileutil.WriteFileAtomic(out.path, []byte(content), fileutil.WriteOptions{Overwrite: out.force})
	if err != nil {
		return fmt.Errorf("%w: %w%s", ErrWriteOutput, err, hints.ForOutputFile(errors.Is(err, fileutil.ErrFileExists)))
	}
	log.Info().Str("path", out.path).Int("bytes", len(content)).Msg("wrote output")
	return nil
}

// writeJSON prints v as indented JSON without HTML escaping.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
