package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "taralog/internal/errors"
	"taralog/internal/model"
	"taralog/internal/repository"
)

// Languages accepted on reading requests.
const (
	LangEN = "en"
	LangRU = "ru"
)

var spreadPositions = map[string][]string{
	LangEN: {"You (Your essence)", "Past", "Present", "Future", "Advice"},
	LangRU: {"Вы (Ваша суть)", "Прошлое", "Настоящее", "Будущее", "Совет"},
}

var reversedMarker = map[string]string{
	LangEN: " (Reversed)",
	LangRU: " (Перевёрнута)",
}

// ContextBuilder assembles the prompt pair sent to the interpretation
// service: the per-type system prompt and the composed user message.
type ContextBuilder struct {
	prompts repository.PromptRepository
}

// NewContextBuilder creates a builder over the given prompt store.
func NewContextBuilder(prompts repository.PromptRepository) *ContextBuilder {
	return &ContextBuilder{prompts: prompts}
}

// SystemPrompt looks up the prompt template for a reading type. A missing
// template is a hard failure; there is no default prompt to fall back to,
// because a wrong prompt silently changes reading quality.
func (b *ContextBuilder) SystemPrompt(ctx context.Context, readingType string) (string, error) {
	prompt, err := b.prompts.FindByName(ctx, readingType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: %s", apperrors.ErrPromptNotFound, readingType)
		}
		return "", fmt.Errorf("load system prompt: %w", err)
	}
	return prompt.Content, nil
}

// UserMessage composes the natural-language user message. Pure function of
// its inputs; deterministic line order: language directive, user attributes
// (name, surname, gender, birth date, birth place, birth time), question,
// card spread, partner block. Absent user fields are omitted; absent partner
// sub-fields render as "Unknown" so the partner block keeps its shape.
func (b *ContextBuilder) UserMessage(user *model.User, question string, cards []model.Card, partner *model.PartnerData, language string) string {
	if language != LangRU {
		language = LangEN
	}
	langName := "English"
	if language == LangRU {
		langName = "Russian"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Language: %s\n", langName)
	fmt.Fprintf(&sb, "Please respond in %s.\n\n", langName)

	if user != nil {
		if user.FirstName != "" {
			fmt.Fprintf(&sb, "Client name: %s\n", user.FirstName)
		}
		if user.LastName != "" {
			fmt.Fprintf(&sb, "Client surname: %s\n", user.LastName)
		}
		if user.Gender != "" {
			fmt.Fprintf(&sb, "Gender: %s\n", genderLabel(user.Gender))
		}
		if user.BirthDate != nil {
			fmt.Fprintf(&sb, "Birth date: %s\n", user.BirthDate.Format("2006-01-02"))
		}
		if user.BirthPlace != "" {
			fmt.Fprintf(&sb, "Birth place: %s\n", user.BirthPlace)
		}
		if user.BirthTime != "" {
			fmt.Fprintf(&sb, "Birth time: %s\n", user.BirthTime)
		}
	}

	if question != "" {
		fmt.Fprintf(&sb, "\nQuestion: %s\n", question)
	}

	if len(cards) > 0 {
		sb.WriteString("\nTarot Spread (Five Card Cross):\n")
		positions := spreadPositions[language]
		for i, card := range cards {
			// Labels are assigned strictly by index; the caller supplies
			// cards already ordered. Extra cards get a generic label
			// instead of panicking.
			position := fmt.Sprintf("Position %d", i+1)
			if i < len(positions) {
				position = positions[i]
			}
			reversed := ""
			if card.IsReversed {
				reversed = reversedMarker[language]
			}
			fmt.Fprintf(&sb, "%s: %s%s\n", position, card.Name, reversed)
		}
	}

	if partner != nil {
		fmt.Fprintf(&sb, "\nPartner information: %s, %s, %s, %s\n",
			orUnknown(partner.FirstName),
			orUnknown(partner.BirthDate),
			orUnknown(partner.BirthPlace),
			orUnknown(partner.BirthTime),
		)
	}

	return strings.TrimSpace(sb.String())
}

func genderLabel(gender string) string {
	switch gender {
	case model.GenderFemale:
		return "Female"
	case model.GenderMale:
		return "Male"
	default:
		return "Other"
	}
}

func orUnknown(v string) string {
	if v == "" {
		return "Unknown"
	}
	return v
}
