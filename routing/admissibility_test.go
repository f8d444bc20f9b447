package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Khoshkhah/routing-engine/shortcut"
)

// TestBackwardAdmissiblePruned exercises every (inside, check, at_high)
// combination of the backward-direction pruning table directly, rather
// than only indirectly through a full bidirectional query.
func TestBackwardAdmissiblePruned(t *testing.T) {
	cases := []struct {
		name    string
		inside  shortcut.Inside
		check   bool
		at_high bool
		want    bool
	}{
		{"down admitted when check", shortcut.Down, true, false, true},
		{"down rejected when not check", shortcut.Down, false, false, false},
		{"down rejected when not check even at_high", shortcut.Down, false, true, false},

		{"lateral admitted at_high regardless of check", shortcut.Lateral, true, true, true},
		{"lateral admitted off-high when not check", shortcut.Lateral, false, false, true},
		{"lateral rejected off-high when check", shortcut.Lateral, true, false, false},

		{"boundary admitted when not check", shortcut.Boundary, false, false, true},
		{"boundary rejected when check", shortcut.Boundary, true, false, false},
		{"boundary rejected when check even at_high", shortcut.Boundary, true, true, false},

		{"up never admitted", shortcut.Up, true, true, false},
		{"up never admitted regardless of check/at_high", shortcut.Up, false, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := backwardAdmissiblePruned(c.inside, c.check, c.at_high)
			assert.Equal(t, c.want, got)
		})
	}
}
