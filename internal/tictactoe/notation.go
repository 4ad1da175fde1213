package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// ParseMove reads "13" or "1 3" as row 1, column 3. Only the shape and the
// numbers are checked here, range and occupancy are checked by MakeTurn.
func ParseMove(text string) (int, int, error) {
	if len(text) == 2 && isDigit(text[0]) && isDigit(text[1]) {
		return int(text[0] - '0'), int(text[1] - '0'), nil
	}

	parts := strings.Split(text, " ")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", apperror.ErrInvalidFormat, text)
	}

	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", apperror.ErrInvalidMove, parts[0])
	}

	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: column %q", apperror.ErrInvalidMove, parts[1])
	}

	return row, col, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
