package draw

import "github.com/casedrop/casedrop/internal/domain"

// Default reel geometry: fifty tiles with the committed outcome at tile thirty,
// matching the storefront spinner the animation renders against.
const (
	DefaultReelLength  = 50
	DefaultRevealIndex = 30
)

// BuildReel pre-generates the decorative spin sequence for one opening. Every
// tile except the reveal position is drawn independently from the same table;
// those draws are purely cosmetic and never influence the committed result.
// The already-determined outcome is spliced in at revealIndex, so the animation
// always lands on the true result no matter what the filler tiles show.
func (e *Engine) BuildReel(outcomes []domain.CardOutcome, committed domain.CardOutcome, length, revealIndex int) (domain.Reel, error) {
	if length <= 0 {
		length = DefaultReelLength
	}
	if revealIndex < 0 || revealIndex >= length {
		revealIndex = length / 2
	}

	tiles := make([]domain.CardOutcome, length)
	for i := range tiles {
		if i == revealIndex {
			tiles[i] = committed
			continue
		}
		o, err := e.Draw(outcomes)
		if err != nil {
			return domain.Reel{}, err
		}
		tiles[i] = o
	}

	return domain.Reel{Outcomes: tiles, RevealIndex: revealIndex}, nil
}
