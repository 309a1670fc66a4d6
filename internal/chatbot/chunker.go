package chatbot

import "strings"

const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

// SplitText fatia o texto em janelas de chunkSize caracteres com
// sobreposição de overlap entre janelas consecutivas.
func SplitText(text string, chunkSize, overlap int) []string {
	if chunkSize <= 0 {
		return nil
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = 0
	}

	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil
	}

	runes := []rune(text)
	step := chunkSize - overlap

	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + chunkSize
		if end > len(runes) {
			end = len(runes)
		}

		if chunk := strings.TrimSpace(string(runes[start:end])); chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end == len(runes) {
			break
		}
	}

	return chunks
}
