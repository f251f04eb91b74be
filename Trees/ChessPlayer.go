package Trees

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrNegativeWins is returned for a player with fewer than 0 wins.
var ErrNegativeWins = errors.New("wins must be non-negative")

// ChessPlayer is keyed by Name; two players with the same Name are the same
// player regardless of Wins.
type ChessPlayer struct {
	Name string `mapstructure:"name" json:"name" yaml:"name"`
	Wins int    `mapstructure:"wins" json:"wins" yaml:"wins"`
}

// NewChessPlayer returns the player or ErrNegativeWins when wins<0.
func NewChessPlayer(name string, wins int) (ChessPlayer, error) {
	p := ChessPlayer{name, wins}
	return p, p.Validate()
}

// Validate returns ErrNegativeWins, wrapped with the player, when p.Wins<0.
func (p ChessPlayer) Validate() error {
	if p.Wins < 0 {
		return errors.Wrapf(ErrNegativeWins, "player %q has %d wins", p.Name, p.Wins)
	}
	return nil
}

func (p ChessPlayer) String() string {
	return p.Name + "(" + strconv.Itoa(p.Wins) + ")"
}
