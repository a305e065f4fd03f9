package service

import (
	"alcyxob/workout-planner/internal/domain"
	"strconv"
	"strings"
)

// SystemInstruction frames the model as a personal trainer answering in
// Brazilian Portuguese.
const SystemInstruction = "Você é um personal trainer de classe mundial e especialista em fitness. " +
	"Sua tarefa é criar planos de treino seguros, eficazes e bem estruturados. " +
	"A resposta deve ser em português do Brasil."

// promptTemplate asks for a 5-day gym plan. {{weight}}, {{height}} and
// {{goal}} are replaced verbatim. The indentation is part of the text sent
// to the model.
const promptTemplate = `
      Crie um plano de treino detalhado de 5 dias para um usuário com as seguintes características:
      - Peso: {{weight}} kg
      - Altura: {{height}} cm
      - Objetivo: {{goal}}

      O plano deve ser estruturado e focado em academias. Para cada dia de treino, forneça:
      1. Um 'daySummary': um resumo conciso com o foco principal ou uma dica de ouro para o treino daquele dia.
      2. Uma lista de exercícios. Para cada exercício, forneça o nome, uma descrição detalhada da execução correta, o número de séries e repetições, o tempo de descanso, o equipamento necessário, os principais músculos trabalhados e o ID de um vídeo do YouTube relevante, de alta qualidade, PÚBLICO e com INCORPORAÇÃO PERMITIDA que demonstre o exercício. A validade e disponibilidade do vídeo são essenciais.
      Responda APENAS com o objeto JSON.
    `

// BuildPrompt renders the generation prompt for req. Numbers use the
// shortest decimal form, so 80 stays "80" and 72.5 stays "72.5".
func BuildPrompt(req domain.PlanRequest) string {
	r := strings.NewReplacer(
		"{{weight}}", strconv.FormatFloat(req.WeightKg, 'f', -1, 64),
		"{{height}}", strconv.FormatFloat(req.HeightCm, 'f', -1, 64),
		"{{goal}}", string(req.Goal),
	)
	return r.Replace(promptTemplate)
}
