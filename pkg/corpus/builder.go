package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Kind identifies how a document source should be read and chunked.
type Kind string

const (
	KindCSV  Kind = "csv"  // Source is a path; every row becomes one document
	KindPDF  Kind = "pdf"  // Source is a path; plain text is extracted, then split
	KindText Kind = "text" // Source is a path; content is split directly
	KindRaw  Kind = "raw"  // Source is literal text; split directly
	// KindRecord carries an already-serialized structured record (e.g. a
	// warning event). It is embedded as a single chunk, never split.
	KindRecord Kind = "record"
)

// Document is one heterogeneous corpus input.
type Document struct {
	Source string
	Kind   Kind
}

// Chunk is a bounded unit of corpus text tagged with its owning tenant.
// Chunks are produced once and never mutated.
type Chunk struct {
	Text     string
	TenantID string
}

// Builder normalizes heterogeneous documents into a flat chunk sequence.
type Builder struct {
	splitter *Splitter
}

func NewBuilder(chunkSize, overlap int) *Builder {
	return &Builder{
		splitter: NewSplitter(chunkSize, overlap),
	}
}

// Build produces the ordered chunk sequence for a tenant. An unreadable
// source fails the whole call; the caller decides whether to skip or abort.
func (b *Builder) Build(tenantID string, docs []Document) ([]Chunk, error) {
	var chunks []Chunk

	appendTexts := func(texts []string) {
		for _, t := range texts {
			if strings.TrimSpace(t) == "" {
				continue
			}
			chunks = append(chunks, Chunk{Text: t, TenantID: tenantID})
		}
	}

	for _, doc := range docs {
		switch doc.Kind {
		case KindCSV:
			rows, err := readCSVRows(doc.Source)
			if err != nil {
				return nil, fmt.Errorf("read csv %s: %w", doc.Source, err)
			}
			for _, row := range rows {
				appendTexts(b.splitter.Split(row))
			}
		case KindPDF:
			text, err := extractPDFText(doc.Source)
			if err != nil {
				return nil, fmt.Errorf("read pdf %s: %w", doc.Source, err)
			}
			appendTexts(b.splitter.Split(text))
		case KindText:
			data, err := os.ReadFile(doc.Source)
			if err != nil {
				return nil, fmt.Errorf("read text %s: %w", doc.Source, err)
			}
			appendTexts(b.splitter.Split(string(data)))
		case KindRaw:
			appendTexts(b.splitter.Split(doc.Source))
		case KindRecord:
			appendTexts([]string{doc.Source})
		default:
			return nil, fmt.Errorf("unsupported document kind: %s", doc.Kind)
		}
	}

	return chunks, nil
}

// readCSVRows renders every data row as "header: value" lines, one string
// per row, so a row stays self-describing after it is embedded on its own.
func readCSVRows(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	var rows []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		var sb strings.Builder
		for i, value := range record {
			name := fmt.Sprintf("column_%d", i+1)
			if i < len(header) {
				name = strings.TrimSpace(header[i])
			}
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(name)
			sb.WriteString(": ")
			sb.WriteString(strings.TrimSpace(value))
		}
		rows = append(rows, sb.String())
	}

	return rows, nil
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	body, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, body); err != nil {
		return "", err
	}
	return sb.String(), nil
}
