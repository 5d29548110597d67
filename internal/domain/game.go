package domain

// Phase is the session's top-level mode.
type Phase string

const (
	PhaseMenu   Phase = "menu"
	PhaseShop   Phase = "shop"
	PhaseBattle Phase = "battle"
)

// GameState is the root session object threaded through every
// operation. FirstBattle is a one-shot hint flag the driver clears
// after showing its tip.
type GameState struct {
	GameID      string       `json:"game_id"`
	PlayerName  string       `json:"player_name"`
	Robot       Robot        `json:"robot"`
	Phase       Phase        `json:"phase"`
	Battle      *BattleState `json:"battle,omitempty"`
	FirstBattle bool         `json:"first_battle"`
}
