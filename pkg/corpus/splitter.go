package corpus

// Splitter cuts long text into fixed-size rune windows with a trailing
// overlap, so every chunk fits the embedding model input while keeping
// sentence-spanning context from the previous window.
type Splitter struct {
	ChunkSize int
	Overlap   int
}

const (
	DefaultChunkSize = 1000
	DefaultOverlap   = 200
)

func NewSplitter(chunkSize, overlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = chunkSize / 5
	}
	return &Splitter{
		ChunkSize: chunkSize,
		Overlap:   overlap,
	}
}

// Split slices text into overlapping windows. Every chunk except the last
// has exactly ChunkSize runes; for input of N runes the result holds
// ceil((N-Overlap)/(ChunkSize-Overlap)) chunks.
func (s *Splitter) Split(text string) []string {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	totalLen := len(runes)
	if totalLen <= s.ChunkSize {
		return []string{text}
	}

	step := s.ChunkSize - s.Overlap

	var chunks []string
	for i := 0; i < totalLen; i += step {
		end := i + s.ChunkSize
		if end > totalLen {
			end = totalLen
		}

		chunks = append(chunks, string(runes[i:end]))

		if end == totalLen {
			break
		}
	}

	return chunks
}
