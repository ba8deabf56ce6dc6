package card

import "time"

// OwnedCard is one copy of a card in a player's roster. CardName is always
// the canonical name.
type OwnedCard struct {
	ID              string    `json:"id"`
	PlayerID        string    `json:"player_id"`
	CardName        string    `json:"card_name"`
	LimitBreakLevel int       `json:"limit_break_level"`
	AcquiredAt      time.Time `json:"acquired_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// GetID returns the owned card's instance ID
func (o *OwnedCard) GetID() string {
	return o.ID
}

// GetType returns the entity type for rpg-toolkit
func (o *OwnedCard) GetType() string {
	return "owned_card"
}
