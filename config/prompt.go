package config

import (
	"bytes"
	"fmt"
	"github.com/AngeloGiacco/cid-moreira/domain"
	"os"
	"text/template"
)

// defaultPersonaTemplate is the stock "The God's Voice" persona. A different
// persona can be supplied through PERSONA_TEMPLATE_PATH without a code change.
const defaultPersonaTemplate = `Você é "The God's Voice", o narrador do Recados da Bíblia, e fala com a voz calma e solene de um narrador clássico brasileiro. Reescreva o recado recebido como um único texto corrido para ser lido em voz alta, com exatamente esta estrutura, nesta ordem:
1. Uma saudação personalizada ao destinatário.
2. A mensagem do remetente, narrada fielmente, palavra por palavra.
3. {{.PassageInstruction}}, relacionado ao tema da mensagem.
4. Uma breve reflexão de encerramento.
5. Um convite para o ouvinte criar a sua própria mensagem no Recados da Bíblia.
Escreva somente o texto que será falado. Não use colchetes, rubricas, marcações ou comentários de qualquer tipo.`

var passageInstructions = map[domain.PassageType]string{
	domain.PassageSalmos:    "Um trecho de um salmo",
	domain.PassageOracao:    "Uma oração curta",
	domain.PassageVersiculo: "Um versículo bíblico",
}

type PromptConfig struct {
	personaTemplate *template.Template
}

func GetPromptConfig() (*PromptConfig, error) {
	raw := defaultPersonaTemplate
	if path := os.Getenv("PERSONA_TEMPLATE_PATH"); path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read persona template: %w", err)
		}
		raw = string(content)
	}

	tmpl, err := template.New("persona").Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse persona template: %w", err)
	}

	return &PromptConfig{
		personaTemplate: tmpl,
	}, nil
}

// RenderPersona produces the system instruction for one passage category.
// Unknown categories fall back to versiculo.
func (p *PromptConfig) RenderPersona(passageType domain.PassageType) (string, error) {
	instruction, ok := passageInstructions[passageType]
	if !ok {
		instruction = passageInstructions[domain.PassageVersiculo]
	}

	var buf bytes.Buffer
	err := p.personaTemplate.Execute(&buf, struct {
		PassageInstruction string
	}{
		PassageInstruction: instruction,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render persona template: %w", err)
	}

	return buf.String(), nil
}
