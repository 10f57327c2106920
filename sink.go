package md2docx

import (
	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/pipeline"
)

// documentSink forwards scanned blocks to a docx.Document and counts them.
type documentSink struct {
	doc        *docx.Document
	stats      Stats
	firstTitle string // text of the first level-1 heading
}

func newDocumentSink(doc *docx.Document) *documentSink {
	return &documentSink{doc: doc}
}

func (s *documentSink) AddHeading(text string, level int) {
	if level == 1 && s.firstTitle == "" {
		s.firstTitle = text
	}
	s.doc.AddHeading(text, level)
	s.stats.Headings++
}

func (s *documentSink) AddParagraph(p pipeline.Paragraph) {
	para := s.doc.AddParagraph(p.Text, paragraphStyle(p.Style))
	if p.Color != nil {
		para.SetColor(docx.RGB(p.Color.R, p.Color.G, p.Color.B))
	}
	if p.Style == pipeline.StyleDefault {
		s.stats.Paragraphs++
	} else {
		s.stats.ListItems++
	}
}

func (s *documentSink) AddSeparator(text string) {
	s.doc.AddSeparator(text)
	s.stats.Separators++
}

func (s *documentSink) AddTable(t *pipeline.Table) {
	s.doc.AddTable(t.Headers, t.Rows)
	s.stats.Tables++
}

// paragraphStyle maps scanner styles to Word style IDs.
func paragraphStyle(style pipeline.ParagraphStyle) docx.ParagraphStyle {
	switch style {
	case pipeline.StyleBullet:
		return docx.StyleBullet
	case pipeline.StyleNumbered:
		return docx.StyleNumber
	default:
		return docx.StyleNormal
	}
}
