package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"voyageai/internal/models/domain_models"
	"voyageai/internal/models/response_models"
	"voyageai/internal/repositories"
	"voyageai/pkg/utils"
)

const (
	defaultJustification = "This destination aligns well with your travel personality and preferences."
	defaultRegretPreview = "Consider your tolerance for potential crowds or weather variations."

	justificationMarker = "JUSTIFICATION:"
	regretMarker        = "REGRET_PREVIEW:"

	defaultPersonalityName = "Traveler"
)

type ExplanationServiceInterface interface {
	GenerateTripExplanation(ctx context.Context, destinationID string, profile *response_models.TravelDNAProfile) (*response_models.TripExplanation, error)
	GenerateTripComparison(ctx context.Context, destinationAID, destinationBID string, profile *response_models.TravelDNAProfile) (*response_models.TripComparison, error)
}

// ExplanationService narrates recommendations: a "why this trip" justification
// and an honest regret preview per destination. The AI client is optional; any
// client failure degrades to the deterministic templates, never to an error.
type ExplanationService struct {
	destinationRepo repositories.DestinationRepository
	client          utils.ExplanationClientInterface
	timeout         time.Duration
	logger          *zap.Logger
}

// NewExplanationService builds the service. A nil client means every
// explanation comes from the fallback templates.
func NewExplanationService(
	destinationRepo repositories.DestinationRepository,
	client utils.ExplanationClientInterface,
	timeout time.Duration,
	logger *zap.Logger,
) ExplanationServiceInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &ExplanationService{
		destinationRepo: destinationRepo,
		client:          client,
		timeout:         timeout,
		logger:          logger,
	}
}

func (e *ExplanationService) GenerateTripExplanation(ctx context.Context, destinationID string, profile *response_models.TravelDNAProfile) (*response_models.TripExplanation, error) {
	dest, err := e.destinationRepo.GetDestinationByID(ctx, destinationID)
	if err != nil {
		return nil, err
	}

	if e.client == nil {
		return fallbackExplanation(*dest, profile), nil
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.client.GenerateText(callCtx, buildExplanationPrompt(*dest, profile))
	if err != nil || strings.TrimSpace(raw) == "" {
		if err != nil {
			e.logger.Warn("explanation generation failed, using fallback",
				zap.String("destination_id", destinationID),
				zap.String("provider", e.client.Provider()),
				zap.Error(err))
		}
		return fallbackExplanation(*dest, profile), nil
	}

	return parseExplanation(raw), nil
}

func (e *ExplanationService) GenerateTripComparison(ctx context.Context, destinationAID, destinationBID string, profile *response_models.TravelDNAProfile) (*response_models.TripComparison, error) {
	destA, err := e.destinationRepo.GetDestinationByID(ctx, destinationAID)
	if err != nil {
		return nil, err
	}
	destB, err := e.destinationRepo.GetDestinationByID(ctx, destinationBID)
	if err != nil {
		return nil, err
	}

	if e.client == nil {
		return &response_models.TripComparison{
			Comparison: fallbackComparison(*destA, *destB, profile),
		}, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.client.GenerateText(callCtx, buildComparisonPrompt(*destA, *destB, profile))
	if err != nil || strings.TrimSpace(raw) == "" {
		if err != nil {
			e.logger.Warn("comparison generation failed, using fallback",
				zap.String("provider", e.client.Provider()),
				zap.Error(err))
		}
		return &response_models.TripComparison{
			Comparison: fallbackComparison(*destA, *destB, profile),
		}, nil
	}

	return &response_models.TripComparison{Comparison: strings.TrimSpace(raw)}, nil
}

func personalityName(profile *response_models.TravelDNAProfile) string {
	if profile == nil || profile.PersonalityType == "" {
		return defaultPersonalityName
	}
	return string(profile.PersonalityType)
}

func buildExplanationPrompt(dest domain_models.DestinationRecord, profile *response_models.TravelDNAProfile) string {
	personality := personalityName(profile)

	dimensions := "{}"
	if profile != nil && len(profile.Dimensions) > 0 {
		if encoded, err := json.MarshalIndent(profile.Dimensions, "", "  "); err == nil {
			dimensions = string(encoded)
		}
	}

	highlights := dest.Highlights
	if len(highlights) > 3 {
		highlights = highlights[:3]
	}

	var sb strings.Builder
	sb.WriteString("You are a travel psychologist and expert trip planner for VoyageAI, a confidence-first travel platform.\n\n")
	sb.WriteString("Generate TWO sections for a traveler with this profile:\n")
	sb.WriteString(fmt.Sprintf("- Personality Type: %s\n", personality))
	sb.WriteString(fmt.Sprintf("- Key Traits: %s\n\n", dimensions))
	sb.WriteString(fmt.Sprintf("For this destination: %s, %s\n", dest.Name, dest.Country))
	sb.WriteString(fmt.Sprintf("Category: %s\n", dest.Category))
	sb.WriteString(fmt.Sprintf("Description: %s\n", dest.Description))
	sb.WriteString(fmt.Sprintf("Highlights: %s\n\n", strings.Join(highlights, ", ")))
	sb.WriteString("SECTION 1: \"Why This Trip?\" - Generate a compelling, personalized justification (150-200 words) explaining why this destination perfectly matches their travel DNA. Focus on psychological fit, emotional benefits, and unique alignment with their personality.\n\n")
	sb.WriteString("SECTION 2: \"Regret Preview\" - Honestly preview potential trade-offs or regrets (75-100 words) they might have, based on their personality and preferences. Be specific about what they might miss or find challenging.\n\n")
	sb.WriteString("Format your response exactly as:\n")
	sb.WriteString("JUSTIFICATION: [your text here]\n")
	sb.WriteString("REGRET_PREVIEW: [your text here]\n\n")
	sb.WriteString("Make it insightful, specific, and psychologically aware. Avoid generic travel advice.")

	return sb.String()
}

func buildComparisonPrompt(destA, destB domain_models.DestinationRecord, profile *response_models.TravelDNAProfile) string {
	personality := personalityName(profile)

	describe := func(label string, dest domain_models.DestinationRecord) string {
		highlights := dest.Highlights
		if len(highlights) > 3 {
			highlights = highlights[:3]
		}
		return fmt.Sprintf("DESTINATION %s: %s, %s\nCategory: %s\nHighlights: %s\n",
			label, dest.Name, dest.Country, dest.Category, strings.Join(highlights, ", "))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Compare these two destinations for a traveler with %s personality:\n\n", personality))
	sb.WriteString(describe("A", destA))
	sb.WriteString("\n")
	sb.WriteString(describe("B", destB))
	sb.WriteString("\n")
	sb.WriteString("Provide a concise comparison (200-250 words) focusing on:\n")
	sb.WriteString(fmt.Sprintf("1. Which better aligns with a %s's psychological needs\n", personality))
	sb.WriteString("2. Key experiential differences\n")
	sb.WriteString("3. Potential trade-offs for each option\n")
	sb.WriteString("4. Situations where one clearly outperforms the other\n\n")
	sb.WriteString("Be insightful and specific about psychological fit.")

	return sb.String()
}

// parseExplanation splits the model output on the JUSTIFICATION / REGRET_PREVIEW
// markers. Lines after a marker accumulate into that section until the next
// marker; an absent section falls back to a generic default.
func parseExplanation(raw string) *response_models.TripExplanation {
	var justification, regret strings.Builder
	var current *strings.Builder

	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		switch {
		case strings.HasPrefix(line, justificationMarker):
			current = &justification
			justification.WriteString(strings.TrimSpace(strings.TrimPrefix(line, justificationMarker)))
		case strings.HasPrefix(line, regretMarker):
			current = &regret
			regret.WriteString(strings.TrimSpace(strings.TrimPrefix(line, regretMarker)))
		case current != nil:
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if current.Len() > 0 {
				current.WriteString(" ")
			}
			current.WriteString(trimmed)
		}
	}

	explanation := &response_models.TripExplanation{
		Justification: justification.String(),
		RegretPreview: regret.String(),
	}
	if explanation.Justification == "" {
		explanation.Justification = defaultJustification
	}
	if explanation.RegretPreview == "" {
		explanation.RegretPreview = defaultRegretPreview
	}
	return explanation
}

// fallbackExplanation produces the deterministic category-keyed explanation
// used whenever the AI client is missing or failing.
func fallbackExplanation(dest domain_models.DestinationRecord, profile *response_models.TravelDNAProfile) *response_models.TripExplanation {
	personality := personalityName(profile)
	category := strings.ToLower(string(dest.Category))

	justifications := map[string]string{
		"adventure": fmt.Sprintf("As a %s, you thrive on new challenges and authentic experiences. %s offers exactly that: opportunities to push your boundaries while connecting with spectacular natural environments. The unique activities here align with your desire for meaningful, excitement-filled journeys.", personality, dest.Name),
		"cultural":  fmt.Sprintf("Your %s profile shows deep curiosity about different ways of life. %s provides rich cultural immersion through its history, traditions, and local interactions. This destination satisfies your intellectual curiosity while offering beautiful settings for reflection and learning.", personality, dest.Name),
		"luxury":    fmt.Sprintf("With your %s preferences, comfort and quality experiences matter most. %s delivers exceptional service, refined amenities, and exclusive access that align perfectly with your travel values. You'll appreciate the attention to detail and opportunities for pampering.", personality, dest.Name),
		"nature":    fmt.Sprintf("Your %s traits indicate a strong connection to natural environments. %s offers pristine landscapes, diverse ecosystems, and opportunities for environmental engagement that will deeply resonate with your values and rejuvenate your spirit.", personality, dest.Name),
		"urban":     fmt.Sprintf("As a %s, you enjoy vibrant energy and diverse experiences. %s provides the perfect blend of cultural attractions, culinary scenes, and urban exploration that matches your pace and interests in contemporary experiences.", personality, dest.Name),
		"beach":     fmt.Sprintf("Your %s profile suggests you value relaxation and scenic beauty. %s offers the ideal combination of stunning coastlines, comfortable accommodations, and opportunities for both activity and rest that align with your travel goals.", personality, dest.Name),
		"wellness":  fmt.Sprintf("With your %s preferences, rejuvenation and self-care are priorities. %s provides holistic wellness experiences, peaceful environments, and activities focused on restoring balance, exactly what your travel DNA seeks for meaningful relaxation.", personality, dest.Name),
	}

	regretPreviews := map[string]string{
		"adventure": "If you prefer predictable itineraries and constant comforts, the physical demands and potential unpredictability might challenge your expectations. Consider your tolerance for rustic conditions.",
		"cultural":  "If you primarily seek relaxation or nightlife, the focus on historical sites and cultural activities might feel too structured. The pace of exploration might overwhelm those wanting pure leisure.",
		"luxury":    "Travelers seeking rugged authenticity or budget experiences might find the premium pricing and formal atmosphere less appealing than more casual destinations.",
		"nature":    "Those craving urban excitement, nightlife, or constant connectivity might find the remote locations and limited amenities less satisfying than more developed destinations.",
		"urban":     "If you seek solitude, natural quiet, or slow-paced relaxation, the city energy, noise, and constant stimulation might feel overwhelming rather than invigorating.",
		"beach":     "Adventure-seekers or culture enthusiasts might find extended beach stays less stimulating than destinations offering more diverse activity options beyond coastal relaxation.",
		"wellness":  "Travelers seeking high-energy activities, party scenes, or extensive sightseeing might find the wellness-focused pace and activities too gentle for their preferences.",
	}

	if _, ok := justifications[category]; !ok {
		category = "adventure"
	}

	return &response_models.TripExplanation{
		Justification: justifications[category],
		RegretPreview: regretPreviews[category],
	}
}

func fallbackComparison(destA, destB domain_models.DestinationRecord, profile *response_models.TravelDNAProfile) string {
	personality := personalityName(profile)

	firstHighlight := func(dest domain_models.DestinationRecord) string {
		if len(dest.Highlights) == 0 {
			return "its signature experiences"
		}
		return strings.ToLower(dest.Highlights[0])
	}

	categoryA := strings.ToLower(string(destA.Category))
	categoryB := strings.ToLower(string(destB.Category))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("For a %s traveler:\n\n", personality))
	sb.WriteString(fmt.Sprintf("%s offers %s experiences with focus on %s. This destination provides structured opportunities that align with preferences for %s travel styles.\n\n",
		destA.Name, categoryA, firstHighlight(destA), strings.ToLower(personality)))
	sb.WriteString(fmt.Sprintf("%s emphasizes %s with highlights including %s. This option might better suit those valuing %s aspects of travel.\n\n",
		destB.Name, categoryB, firstHighlight(destB), categoryB))
	sb.WriteString(fmt.Sprintf("The key difference lies in %s versus %s experiences. %s tends toward more curated experiences, while %s offers more spontaneous opportunities.\n\n",
		destA.Category, destB.Category, destA.Name, destB.Name))
	sb.WriteString(fmt.Sprintf("Choose %s if you prioritize %s and structured discovery. Opt for %s if you prefer %s and flexible exploration.",
		destA.Name, categoryA, destB.Name, categoryB))

	return sb.String()
}
