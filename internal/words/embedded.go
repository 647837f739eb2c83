package words

import (
	"fmt"

	"github.com/robalobadob/wordle/apps/term/assets"
)

func readEmbedded() ([]string, error) {
	list, err := assets.WordList()
	if err != nil {
		return nil, fmt.Errorf("%w: embedded list: %w", ErrSourceUnreadable, err)
	}
	return list, nil
}
