package pipeline

// Notes:
// - Recorder captures Scan output so tests can assert on block order.

// BlockKind identifies a recorded block.
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockParagraph
	BlockSeparator
	BlockTable
)

// Block is one element recorded by a Recorder.
type Block struct {
	Kind      BlockKind
	Level     int // headings only
	Text      string
	Paragraph Paragraph // paragraphs only
	Table     *Table    // tables only
}

// Recorder is a Sink that keeps every block in order.
type Recorder struct {
	Blocks []Block
}

func (r *Recorder) AddHeading(text string, level int) {
	r.Blocks = append(r.Blocks, Block{Kind: BlockHeading, Level: level, Text: text})
}

func (r *Recorder) AddParagraph(p Paragraph) {
	r.Blocks = append(r.Blocks, Block{Kind: BlockParagraph, Text: p.Text, Paragraph: p})
}

func (r *Recorder) AddSeparator(text string) {
	r.Blocks = append(r.Blocks, Block{Kind: BlockSeparator, Text: text})
}

func (r *Recorder) AddTable(t *Table) {
	r.Blocks = append(r.Blocks, Block{Kind: BlockTable, Table: t})
}

// Compile-time interface check.
var _ Sink = (*Recorder)(nil)
