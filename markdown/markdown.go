// Package markdown renders post content to sanitized HTML as a templ
// component. Goldmark handles the CommonMark/GFM conversion; bluemonday's
// UGC policy strips anything the editor should not be able to inject.
package markdown

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Typographer),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	policy = bluemonday.UGCPolicy()
)

// Render converts markdown source to sanitized HTML.
func Render(source string) ([]byte, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return nil, err
	}
	return policy.SanitizeBytes(buf.Bytes()), nil
}

// Markdown returns a templ.Component that renders source as HTML.
func Markdown(source string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, err := Render(source)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	})
}
