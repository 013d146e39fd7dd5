package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"taralog/internal/ai"
	apperrors "taralog/internal/errors"
	"taralog/internal/model"
	"taralog/internal/repository"
	"taralog/internal/tarot"
)

const spreadCardCount = 5

var defaultQuestions = map[string]string{
	model.ReadingTaro:    "Taro reading",
	model.ReadingLove:    "Love reading",
	model.ReadingMoney:   "Money reading",
	model.ReadingWork:    "Work reading",
	model.ReadingGeneral: "General reading",
}

// CreateReadingInput is the typed reading request body.
type CreateReadingInput struct {
	Question string
	Cards    []model.Card
	Partner  *model.PartnerData
	Language string
}

// UpdateReadingInput carries the mutable reading fields. Nil means "leave
// unchanged".
type UpdateReadingInput struct {
	SpreadType     *string
	Question       *string
	Interpretation *string
	ReadingType    *string
	Cards          *[]model.Card
	Language       *string
	Partner        *model.PartnerData
}

// ReadingService orchestrates reading creation and owner/admin CRUD.
type ReadingService interface {
	CreateTyped(ctx context.Context, userID uint, readingType string, in CreateReadingInput) (*model.Reading, error)
	ListMine(ctx context.Context, userID uint) ([]model.Reading, error)
	Get(ctx context.Context, actorID uint, actorRole string, id uint) (*model.Reading, error)
	Update(ctx context.Context, actorID uint, actorRole string, id uint, in UpdateReadingInput) (*model.Reading, error)
	Delete(ctx context.Context, actorID uint, actorRole string, id uint) error
	ListAll(ctx context.Context) ([]model.Reading, error)
	DeleteAny(ctx context.Context, id uint) error
}

type readingService struct {
	userRepo    repository.UserRepository
	readingRepo repository.ReadingRepository
	builder     *ContextBuilder
	cards       tarot.CardSource
	interpreter ai.Interpreter
	log         zerolog.Logger
}

// NewReadingService builds a ReadingService.
func NewReadingService(
	userRepo repository.UserRepository,
	readingRepo repository.ReadingRepository,
	builder *ContextBuilder,
	cards tarot.CardSource,
	interpreter ai.Interpreter,
	log zerolog.Logger,
) ReadingService {
	return &readingService{
		userRepo:    userRepo,
		readingRepo: readingRepo,
		builder:     builder,
		cards:       cards,
		interpreter: interpreter,
		log:         log,
	}
}

// CreateTyped runs the full reading pipeline: profile read, prompt template
// read, card draw for taro spreads, interpretation, then a single write.
// Nothing is persisted until interpretation succeeds, so a failed request
// leaves no partial record behind.
func (s *readingService) CreateTyped(ctx context.Context, userID uint, readingType string, in CreateReadingInput) (*model.Reading, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	systemPrompt, err := s.builder.SystemPrompt(ctx, readingType)
	if err != nil {
		return nil, err
	}

	spreadType := model.SpreadQuestion
	var cards []model.Card
	if readingType == model.ReadingTaro {
		spreadType = model.SpreadFiveCard
		cards = in.Cards
		if len(cards) == 0 {
			cards, err = s.cards.DrawRandom(ctx, spreadCardCount)
			if err != nil {
				s.log.Error().Err(err).Uint("user_id", userID).Msg("card draw failed")
				return nil, err
			}
		}
	}

	var partner *model.PartnerData
	if readingType == model.ReadingLove {
		partner = in.Partner
	}

	language := in.Language
	if language != LangRU {
		language = LangEN
	}

	userMessage := s.builder.UserMessage(user, in.Question, cards, partner, language)

	interpretation, err := s.interpreter.Interpret(ctx, systemPrompt, userMessage)
	if err != nil {
		s.log.Error().Err(err).Uint("user_id", userID).Str("reading_type", readingType).Msg("interpretation failed")
		return nil, err
	}

	question := in.Question
	if question == "" {
		question = defaultQuestions[readingType]
	}

	reading := &model.Reading{
		UserID:         userID,
		ReadingType:    readingType,
		SpreadType:     spreadType,
		Question:       question,
		Cards:          cards,
		Interpretation: interpretation,
		Extra: model.ReadingExtra{
			Language: language,
			Partner:  partner,
		},
	}

	if err := s.readingRepo.Create(ctx, reading); err != nil {
		return nil, fmt.Errorf("create reading: %w", err)
	}
	return reading, nil
}

func (s *readingService) ListMine(ctx context.Context, userID uint) ([]model.Reading, error) {
	return s.readingRepo.ListByUser(ctx, userID)
}

func (s *readingService) Get(ctx context.Context, actorID uint, actorRole string, id uint) (*model.Reading, error) {
	reading, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if reading.UserID != actorID && actorRole != model.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}
	return reading, nil
}

func (s *readingService) Update(ctx context.Context, actorID uint, actorRole string, id uint, in UpdateReadingInput) (*model.Reading, error) {
	reading, err := s.Get(ctx, actorID, actorRole, id)
	if err != nil {
		return nil, err
	}

	if in.SpreadType != nil {
		reading.SpreadType = *in.SpreadType
	}
	if in.Question != nil {
		reading.Question = *in.Question
	}
	if in.Interpretation != nil {
		reading.Interpretation = *in.Interpretation
	}
	if in.ReadingType != nil {
		reading.ReadingType = *in.ReadingType
	}
	if in.Cards != nil {
		reading.Cards = *in.Cards
	}
	if in.Language != nil {
		reading.Extra.Language = *in.Language
	}
	if in.Partner != nil {
		reading.Extra.Partner = in.Partner
	}

	if err := s.readingRepo.Update(ctx, reading); err != nil {
		return nil, fmt.Errorf("update reading: %w", err)
	}
	return reading, nil
}

func (s *readingService) Delete(ctx context.Context, actorID uint, actorRole string, id uint) error {
	if _, err := s.Get(ctx, actorID, actorRole, id); err != nil {
		return err
	}
	return s.readingRepo.Delete(ctx, id)
}

func (s *readingService) ListAll(ctx context.Context) ([]model.Reading, error) {
	return s.readingRepo.List(ctx)
}

func (s *readingService) DeleteAny(ctx context.Context, id uint) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	return s.readingRepo.Delete(ctx, id)
}

func (s *readingService) find(ctx context.Context, id uint) (*model.Reading, error) {
	reading, err := s.readingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReadingNotFound
		}
		return nil, err
	}
	return reading, nil
}
