// Package output assembles chapter groups into print-styled documents.
// It is the templating collaborator at the edge of the pipeline: the
// core hands it fully sanitized chapter records and never sees files.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	md "github.com/JohannesKaufmann/html-to-markdown"

	"github.com/avhrem/novelbind/internal/chapters"
	"github.com/avhrem/novelbind/internal/providers"
)

const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

type Writer struct {
	dir    string
	format string
	conv   *md.Converter
}

func NewWriter(dir, format string) (*Writer, error) {
	switch format {
	case FormatHTML, FormatMarkdown:
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create output folder: %w", err)
	}

	w := &Writer{dir: dir, format: format}
	if format == FormatMarkdown {
		w.conv = md.NewConverter("", true, nil)
	}

	return w, nil
}

// WriteGroup renders one group to a file named after the novel and the
// group's global chapter range. The file is written to a .partial path
// first and renamed once complete, so an interrupted run never leaves a
// half-written volume behind.
func (w *Writer) WriteGroup(meta providers.Metadata, g chapters.Group) (string, int64, error) {
	name := chapters.Slug(meta.Title)
	if name == "" {
		name = "novel"
	}

	ext := "html"
	if w.format == FormatMarkdown {
		ext = "md"
	}

	final := filepath.Join(w.dir, fmt.Sprintf("%s_%04d-%04d.%s", name, g.Start, g.End, ext))
	partial := final + ".partial"

	f, err := os.Create(partial)
	if err != nil {
		return "", 0, err
	}

	var renderErr error
	if w.format == FormatMarkdown {
		renderErr = w.renderMarkdown(f, meta, g)
	} else {
		renderErr = renderHTML(f, meta, g)
	}

	if cerr := f.Close(); renderErr == nil {
		renderErr = cerr
	}
	if renderErr != nil {
		_ = os.Remove(partial)
		return "", 0, renderErr
	}

	if err := os.Rename(partial, final); err != nil {
		return "", 0, err
	}

	info, err := os.Stat(final)
	if err != nil {
		return final, 0, nil
	}

	return final, info.Size(), nil
}

func (w *Writer) renderMarkdown(f *os.File, meta providers.Metadata, g chapters.Group) error {
	if _, err := fmt.Fprintf(f, "# %s\n\nChapters %d-%d\n\n", meta.Title, g.Start, g.End); err != nil {
		return err
	}

	for i, ch := range g.Chapters {
		body, err := w.conv.ConvertString(ch.Content)
		if err != nil {
			return fmt.Errorf("chapter %d: %w", g.Start+i, err)
		}

		if _, err := fmt.Fprintf(f, "## %d. %s\n\n%s\n\n", g.Start+i, ch.DisplayTitle(), body); err != nil {
			return err
		}
	}

	return nil
}
