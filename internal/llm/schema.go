package llm

import "google.golang.org/genai"

func str(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

// WorkoutPlanSchema is the response schema sent with every generation call.
// Together with the prompt it forms the contract with the model, so the
// descriptions are part of the wire format and stay in Portuguese.
func WorkoutPlanSchema() *genai.Schema {
	exercise := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":          str("Nome do exercício (ex: 'Supino Reto')."),
			"description":   str("Descrição detalhada de como executar o exercício com a forma correta."),
			"reps":          str("Número de séries e repetições (ex: '4x10-12')."),
			"rest":          str("Tempo de descanso entre as séries (ex: '60 segundos')."),
			"equipment":     str("Equipamento necessário para o exercício (ex: 'Halteres', 'Barra', 'Nenhum')."),
			"musclesWorked": str("Principais músculos trabalhados pelo exercício (ex: 'Peitoral maior, deltoide anterior, tríceps')."),
			"youtubeVideoId": str("O ID de um vídeo PÚBLICO e INCORPORÁVEL do YouTube que demonstre a execução correta do exercício. " +
				"É CRUCIAL que o vídeo não seja privado, não listado ou com a incorporação desativada. " +
				"Priorize canais de fitness conhecidos e com instruções claras. Forneça apenas o ID do vídeo (ex: 'abc123xyz')."),
		},
		Required: []string{"name", "description", "reps", "rest", "equipment", "musclesWorked", "youtubeVideoId"},
	}

	day := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"day":   str("O dia da semana para o treino (ex: 'Dia 1', 'Dia 2')."),
			"focus": str("O principal grupo muscular focado neste dia (ex: 'Peito e Tríceps')."),
			"daySummary": str("Um resumo conciso ou dica principal para o treino do dia. Por exemplo: " +
				"'Foque na contração muscular e controle o movimento em todas as repetições para maximizar o estímulo no peito.'"),
			"exercises": {
				Type:        genai.TypeArray,
				Description: "Lista de exercícios para o dia.",
				Items:       exercise,
			},
		},
		Required: []string{"day", "focus", "daySummary", "exercises"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"workoutPlan": {
				Type:        genai.TypeArray,
				Description: "Plano de treino semanal completo, dividido por dias.",
				Items:       day,
			},
		},
		Required: []string{"workoutPlan"},
	}
}
