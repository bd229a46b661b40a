package match

// chunkTexts splits texts into contiguous sub-batches of at most size
// elements. Concatenating the chunks in order reproduces the input exactly.
func chunkTexts(texts []string, size int) [][]string {
	if len(texts) == 0 {
		return nil
	}
	chunks := make([][]string, 0, (len(texts)+size-1)/size)
	for start := 0; start < len(texts); start += size {
		end := start + size
		if end > len(texts) {
			end = len(texts)
		}
		chunks = append(chunks, texts[start:end])
	}
	return chunks
}
