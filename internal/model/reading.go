package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Reading types. A prompt template must exist under the same name before a
// reading of that type can be produced.
const (
	ReadingTaro    = "taro"
	ReadingLove    = "love"
	ReadingMoney   = "money"
	ReadingWork    = "work"
	ReadingGeneral = "general"
)

// ReadingTypes lists all supported reading types in a stable order.
var ReadingTypes = []string{ReadingTaro, ReadingLove, ReadingMoney, ReadingWork, ReadingGeneral}

// Spread kinds.
const (
	SpreadFiveCard = "five_card"
	SpreadQuestion = "question"
)

// Card is a single drawn tarot card inside a five-card spread.
type Card struct {
	CardID     string `json:"card_id"`
	Name       string `json:"name"`
	IsReversed bool   `json:"is_reversed"`
	Position   string `json:"position"`
}

// Cards is stored as a JSON column.
type Cards []Card

// Value implements driver.Valuer.
func (c Cards) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (c *Cards) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported cards column type %T", value)
	}
	return json.Unmarshal(data, c)
}

// PartnerData is the transient partner profile supplied with love questions.
// It is kept only as opaque reading metadata, never as its own entity.
type PartnerData struct {
	FirstName  string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName   string `json:"last_name,omitempty" validate:"omitempty,max=50"`
	Gender     string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	BirthDate  string `json:"birth_date,omitempty"`
	BirthPlace string `json:"birth_place,omitempty" validate:"omitempty,max=100"`
	BirthTime  string `json:"birth_time,omitempty" validate:"omitempty,len=5"`
}

// ReadingExtra carries per-reading metadata: the requested language and,
// for love readings, the partner block.
type ReadingExtra struct {
	Language string       `json:"language,omitempty"`
	Partner  *PartnerData `json:"partner_data,omitempty"`
}

// Value implements driver.Valuer.
func (e ReadingExtra) Value() (driver.Value, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (e *ReadingExtra) Scan(value interface{}) error {
	if value == nil {
		*e = ReadingExtra{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported extra column type %T", value)
	}
	return json.Unmarshal(data, e)
}

// Reading is a persisted record of one completed reading request.
type Reading struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	UserID         uint         `json:"user_id" gorm:"index;not null"`
	ReadingType    string       `json:"reading_type" gorm:"size:20;index;not null"`
	SpreadType     string       `json:"spread_type" gorm:"size:20;not null;default:'question'"`
	Question       string       `json:"question" gorm:"size:500"`
	Cards          Cards        `json:"cards" gorm:"type:json"`
	Interpretation string       `json:"ai_interpretation" gorm:"type:text"`
	Extra          ReadingExtra `json:"additional_data" gorm:"type:json"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
