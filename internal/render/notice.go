package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	uniErrors "github.com/unijobs/unijobs/internal/errors"
)

// NoticeLevel classifies a notice for styling.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a non-blocking message rendered above a screen. Failures that do
// not demand navigation become notices so the screen underneath stays usable.
type Notice struct {
	Level       NoticeLevel
	Message     string
	Fields      map[string][]string
	Suggestions []string
}

// NoticeFromError maps a client error onto a notice. Redirect-carrying errors
// should be handled by the caller before reaching here; they still render as
// a plain error notice if they do.
func NoticeFromError(err error) Notice {
	var ce *uniErrors.ClientError
	if !errors.As(err, &ce) {
		return Notice{Level: NoticeError, Message: err.Error()}
	}

	level := NoticeError
	if uniErrors.IsNetwork(err) {
		// Transport failures are retryable, not fatal.
		level = NoticeWarning
	}

	return Notice{
		Level:       level,
		Message:     ce.Message,
		Fields:      ce.Fields,
		Suggestions: ce.Suggestions,
	}
}

// Notice renders a notice box. Field errors are listed per field in stable
// order so every rejected field is visible at once.
func (r *Renderer) Notice(n Notice) string {
	var b strings.Builder

	style := r.styles.Muted
	prefix := ""
	switch n.Level {
	case NoticeSuccess:
		style = r.styles.Success
		prefix = "✓ "
	case NoticeWarning:
		style = r.styles.Warning
		prefix = "⚠ "
	case NoticeError:
		style = r.styles.Error
		prefix = "✗ "
	}

	b.WriteString(style.Render(prefix + n.Message))

	if len(n.Fields) > 0 {
		names := make([]string, 0, len(n.Fields))
		for name := range n.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteString("\n")
			b.WriteString(r.styles.Label.Render("  "+name+": ") + strings.Join(n.Fields[name], "; "))
		}
	}

	for _, s := range n.Suggestions {
		b.WriteString("\n")
		b.WriteString(r.styles.Muted.Render(fmt.Sprintf("  • %s", s)))
	}

	return b.String()
}
