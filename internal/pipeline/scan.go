package pipeline

import (
	"context"
	"strings"
)

// ctxCheckInterval is how many lines are scanned between context checks.
const ctxCheckInterval = 1024

// Scanner routes Markdown lines to a Sink.
type Scanner struct {
	sink  Sink
	table TableAccumulator
}

// NewScanner creates a Scanner that emits to sink.
func NewScanner(sink Sink) *Scanner {
	return &Scanner{sink: sink}
}

// Scan classifies every line of content in order and emits the matching
// blocks. A table still open at end of input is flushed before returning.
// Returns ctx.Err() if the context is cancelled mid-scan; blocks emitted
// before cancellation stay in the sink.
func (s *Scanner) Scan(ctx context.Context, content string) error {
	for i, line := range strings.Split(content, "\n") {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		s.ScanLine(line)
	}
	s.Flush()
	return nil
}

// ScanLine processes a single line.
func (s *Scanner) ScanLine(line string) {
	if IsTableRow(line) {
		s.table.Add(line)
		return
	}

	// First non-table line closes the block, then is classified normally.
	if s.table.Collecting() {
		s.Flush()
	}

	s.emit(ClassifyLine(line))
}

// Flush emits the open table block, if any.
func (s *Scanner) Flush() {
	if t := s.table.Flush(); t != nil {
		s.sink.AddTable(t)
	}
}

func (s *Scanner) emit(c Classified) {
	switch c.Kind {
	case LineHeading:
		s.sink.AddHeading(c.Text, c.Level)
	case LineRule:
		s.sink.AddSeparator(c.Text)
	case LineBullet:
		s.sink.AddParagraph(Paragraph{Text: StripInline(c.Text), Style: StyleBullet})
	case LineNumbered:
		s.sink.AddParagraph(Paragraph{Text: StripInline(c.Text), Style: StyleNumbered})
	case LineParagraph:
		s.sink.AddParagraph(statusParagraph(StripInline(c.Text)))
	}
}

// statusParagraph builds a default-style paragraph, colored when the
// formatted text starts with a status marker.
func statusParagraph(text string) Paragraph {
	p := Paragraph{Text: text, Style: StyleDefault}
	if m, ok := MatchStatusMarker(text); ok {
		color := m.Color
		p.Color = &color
	}
	return p
}

// Scan is a convenience wrapper around NewScanner(sink).Scan.
func Scan(ctx context.Context, content string, sink Sink) error {
	return NewScanner(sink).Scan(ctx, content)
}
