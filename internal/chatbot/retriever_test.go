package chatbot_test

import (
	"context"
	"strings"
	"testing"

	"github.com/grh-platform/grh-lambda/internal/chatbot"
)

func TestSplitText(t *testing.T) {
	t.Run("ShortTextSingleChunk", func(t *testing.T) {
		chunks := chatbot.SplitText("GRH oferece bolsas de pesquisa.", 1000, 200)
		if len(chunks) != 1 {
			t.Fatalf("Esperava 1 chunk, recebi %d", len(chunks))
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		if chunks := chatbot.SplitText("   \n  ", 1000, 200); chunks != nil {
			t.Errorf("Texto vazio deveria retornar nil, recebi %d chunks", len(chunks))
		}
	})

	t.Run("OverlapBetweenChunks", func(t *testing.T) {
		text := strings.Repeat("abcdefghij", 30) // 300 caracteres
		chunks := chatbot.SplitText(text, 100, 20)

		if len(chunks) != 4 {
			t.Fatalf("Esperava 4 chunks (passo 80), recebi %d", len(chunks))
		}
		for i := 1; i < len(chunks); i++ {
			prev := chunks[i-1]
			tail := prev[len(prev)-20:]
			if !strings.HasPrefix(chunks[i], tail) {
				t.Errorf("Chunk %d não sobrepõe o final do anterior", i)
			}
		}
	})

	t.Run("ChunkSizeRespected", func(t *testing.T) {
		text := strings.Repeat("x", 5000)
		for _, chunk := range chatbot.SplitText(text, 1000, 200) {
			if len([]rune(chunk)) > 1000 {
				t.Fatalf("Chunk excede o tamanho máximo: %d", len(chunk))
			}
		}
	})
}

func TestKeywordRetriever(t *testing.T) {
	ctx := context.Background()
	retriever := chatbot.NewKeywordRetriever([]string{
		"GRH provides research grants and fellowships for graduate students.",
		"The library opens at 8am and closes at 10pm on weekdays.",
		"Research grants at GRH cover travel, equipment and publication fees. Grants are renewed yearly.",
		"Cafeteria menus rotate weekly.",
	})

	t.Run("RanksByTermFrequency", func(t *testing.T) {
		passages, err := retriever.Retrieve(ctx, "research grants", 4)
		if err != nil {
			t.Fatalf("Retrieve falhou: %v", err)
		}
		if len(passages) != 2 {
			t.Fatalf("Esperava 2 passagens com correspondência, recebi %d", len(passages))
		}
		if !strings.Contains(passages[0].Content, "travel, equipment") {
			t.Errorf("Passagem com mais ocorrências deveria vir primeiro: %q", passages[0].Content)
		}
		if passages[0].Score <= passages[1].Score {
			t.Errorf("Pontuações fora de ordem: %v <= %v", passages[0].Score, passages[1].Score)
		}
	})

	t.Run("TopKLimit", func(t *testing.T) {
		passages, err := retriever.Retrieve(ctx, "grh research library cafeteria", 2)
		if err != nil {
			t.Fatalf("Retrieve falhou: %v", err)
		}
		if len(passages) > 2 {
			t.Errorf("Top-k deveria limitar a 2 passagens, recebi %d", len(passages))
		}
	})

	t.Run("CaseAndPunctuationInsensitive", func(t *testing.T) {
		passages, err := retriever.Retrieve(ctx, "GRANTS?", 4)
		if err != nil {
			t.Fatalf("Retrieve falhou: %v", err)
		}
		if len(passages) == 0 {
			t.Error("Consulta em maiúsculas com pontuação deveria encontrar passagens")
		}
	})

	t.Run("NoMatches", func(t *testing.T) {
		passages, err := retriever.Retrieve(ctx, "zzzz", 4)
		if err != nil {
			t.Fatalf("Retrieve falhou: %v", err)
		}
		if len(passages) != 0 {
			t.Errorf("Consulta sem correspondência deveria retornar vazio, recebi %d", len(passages))
		}
	})
}
