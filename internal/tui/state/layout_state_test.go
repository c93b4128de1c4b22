package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectLayoutDerivesIconAndLabel(t *testing.T) {
	for _, isLinear := range []bool{true, false} {
		s := NewLayoutState(!isLinear)
		s.SelectLayout(isLinear)

		got := s.Snapshot()
		assert.Equal(t, isLinear, got.IsLinearLayout)
		if isLinear {
			assert.Equal(t, GridIcon, got.ToggleIcon)
			assert.Equal(t, GridLabel, got.ToggleContentDescription)
		} else {
			assert.Equal(t, ListIcon, got.ToggleIcon)
			assert.Equal(t, ListLabel, got.ToggleContentDescription)
		}
	}
}

func TestSelectLayoutIsIdempotent(t *testing.T) {
	for _, isLinear := range []bool{true, false} {
		once := NewLayoutState(true)
		once.SelectLayout(isLinear)

		twice := NewLayoutState(true)
		twice.SelectLayout(isLinear)
		twice.SelectLayout(isLinear)

		assert.Equal(t, once.Snapshot(), twice.Snapshot())
	}
}

func TestSubscribersSeeEverySelection(t *testing.T) {
	s := NewLayoutState(true)

	var seen []UiState
	s.Subscribe(func(u UiState) { seen = append(seen, u) })
	s.Subscribe(nil)

	s.SelectLayout(false)
	s.SelectLayout(false)
	s.SelectLayout(true)

	assert.Equal(t, []UiState{NewUiState(false), NewUiState(false), NewUiState(true)}, seen)
}

func TestIconAndLabelText(t *testing.T) {
	assert.Equal(t, "Grid layout", GridLabel.String())
	assert.Equal(t, "List layout", ListLabel.String())
	assert.NotEqual(t, GridIcon.Glyph(), ListIcon.Glyph())
}
