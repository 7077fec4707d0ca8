package render

import "strings"

// Markdown renders markdown content for terminal display.
func Markdown(content string, opts Options) (string, error) {
	renderer, err := renderers.borrow(opts)
	if err != nil {
		return "", err
	}
	defer renderers.release(opts, renderer)

	return renderer.Render(content)
}

// MarkdownOrPlain renders content and falls back to the raw text if
// rendering fails. Surrounding blank lines added by glamour are trimmed.
func MarkdownOrPlain(content string, opts Options) string {
	rendered, err := Markdown(content, opts)
	if err != nil {
		return content
	}
	return strings.Trim(rendered, "\n")
}
