package chatbot

import (
	"os"

	"github.com/grh-platform/grh-lambda/internal/config"
	"github.com/grh-platform/grh-lambda/internal/llm"
)

type ChatbotContainer struct {
	Service Service
	Handler *Handler
}

// NewChatbotContainer monta o índice de recuperação a partir do documento
// apontado por DOCUMENT_PATH. Se o documento não puder ser carregado, o
// serviço sobe mesmo assim e /ask responde 503 até o índice existir.
func NewChatbotContainer(provider llm.Provider) *ChatbotContainer {
	var retriever Retriever

	path := os.Getenv("DOCUMENT_PATH")
	if path == "" {
		path = "grh_info.txt"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		config.Logger.WithError(err).Warnf("[CHATBOT] Documento %s indisponível, índice não construído", path)
	} else {
		chunks := SplitText(string(data), DefaultChunkSize, DefaultChunkOverlap)
		if len(chunks) == 0 {
			config.Logger.Warnf("[CHATBOT] Documento %s vazio, índice não construído", path)
		} else {
			retriever = NewKeywordRetriever(chunks)
			config.Logger.Infof("[CHATBOT] Índice construído com %d passagens", len(chunks))
		}
	}

	service := NewService(retriever, provider)

	return &ChatbotContainer{
		Service: service,
		Handler: NewHandler(service),
	}
}
