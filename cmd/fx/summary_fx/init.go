package summary_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"itinero/internal/repositories"
	"itinero/internal/services"
	"itinero/pkg/utils"
)

var Module = fx.Provide(provideNarrativeClient, provideSummaryService)

// provideNarrativeClient picks the AI backend from AI_PROVIDER: "openai" or
// Gemini by default.
func provideNarrativeClient() (utils.NarrativeClientInterface, error) {
	if strings.EqualFold(os.Getenv("AI_PROVIDER"), "openai") {
		log.Println("Using OpenAI narrative backend")
		return utils.NewOpenAINarrativeClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL")), nil
	}
	return utils.NewGeminiNarrativeClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
}

func provideSummaryService(tripRepo repositories.TripRepository, client utils.NarrativeClientInterface) services.SummaryServiceInterface {
	return services.NewSummaryService(tripRepo, client)
}
