package showcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Empty sequence", func(t *testing.T) {
		s, err := New(nil)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, ErrEmptySequence)
	})

	t.Run("Mount state", func(t *testing.T) {
		s, err := New(sampleItems(3))
		require.NoError(t, err)

		state := s.State()
		assert.Equal(t, 0, state.Index)
		assert.Equal(t, Still, state.Direction)
		assert.True(t, state.AutoAdvancing)
		assert.Equal(t, 3, state.Count)
		assert.Equal(t, 1, state.Current.ID)
	})

	t.Run("Sequence is copied", func(t *testing.T) {
		items := sampleItems(2)
		s, err := New(items)
		require.NoError(t, err)

		items[0].Quote = "changed"
		assert.Equal(t, "quote 1", s.State().Current.Quote)
	})
}

func TestAdvanceWrapsBothWays(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		for start := 0; start < n; start++ {
			for _, step := range []Direction{Forward, Backward} {
				s, err := New(sampleItems(n))
				require.NoError(t, err)
				require.NoError(t, s.Select(start))

				require.NoError(t, s.Advance(step))

				state := s.State()
				want := ((start+int(step))%n + n) % n
				assert.Equal(t, want, state.Index, "n=%d start=%d step=%d", n, start, step)
				assert.Equal(t, step, state.Direction)
				assert.False(t, state.AutoAdvancing)
			}
		}
	}
}

func TestSingleItem(t *testing.T) {
	s, err := New(sampleItems(1))
	require.NoError(t, err)

	require.True(t, s.Tick())
	state := s.State()
	assert.Equal(t, 0, state.Index)
	assert.Equal(t, Forward, state.Direction)
	assert.True(t, state.AutoAdvancing)

	require.NoError(t, s.Advance(Backward))
	state = s.State()
	assert.Equal(t, 0, state.Index)
	assert.Equal(t, Backward, state.Direction)
	assert.False(t, state.AutoAdvancing)

	require.NoError(t, s.Advance(Forward))
	state = s.State()
	assert.Equal(t, 0, state.Index)
	assert.Equal(t, Forward, state.Direction)
	assert.Equal(t, 1, state.Current.ID)
}

func TestAdvanceFromZeroBackward(t *testing.T) {
	s, err := New(sampleItems(5))
	require.NoError(t, err)

	require.NoError(t, s.Advance(Backward))
	assert.Equal(t, 4, s.State().Index)
}

func TestAdvanceInvalidStep(t *testing.T) {
	s, err := New(sampleItems(3))
	require.NoError(t, err)

	err = s.Advance(Direction(2))
	assert.ErrorIs(t, err, ErrInvalidStep)
	assert.Equal(t, 0, s.State().Index)
	assert.True(t, s.State().AutoAdvancing)
}

func TestScenarioFiveItems(t *testing.T) {
	s, err := New(sampleItems(5))
	require.NoError(t, err)

	var got []int
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Advance(Forward))
		got = append(got, s.State().Index)
	}
	assert.Equal(t, []int{1, 2, 3}, got)

	got = nil
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Advance(Backward))
		got = append(got, s.State().Index)
	}
	assert.Equal(t, []int{2, 1, 0, 4, 3}, got)
}

func TestSelect(t *testing.T) {
	t.Run("Every valid target", func(t *testing.T) {
		for start := 0; start < 4; start++ {
			for target := 0; target < 4; target++ {
				s, err := New(sampleItems(4))
				require.NoError(t, err)
				require.NoError(t, s.Select(start))

				require.NoError(t, s.Select(target))

				state := s.State()
				assert.Equal(t, target, state.Index)
				if target > start {
					assert.Equal(t, Forward, state.Direction)
				} else {
					assert.Equal(t, Backward, state.Direction)
				}
				assert.False(t, state.AutoAdvancing)
			}
		}
	})

	t.Run("Out of range is rejected", func(t *testing.T) {
		s, err := New(sampleItems(3))
		require.NoError(t, err)

		assert.ErrorIs(t, s.Select(3), ErrIndexOutOfRange)
		assert.ErrorIs(t, s.Select(-1), ErrIndexOutOfRange)

		state := s.State()
		assert.Equal(t, 0, state.Index)
		assert.True(t, state.AutoAdvancing)
	})
}

func TestPauseResumeTick(t *testing.T) {
	s, err := New(sampleItems(3))
	require.NoError(t, err)

	assert.True(t, s.Tick())
	assert.Equal(t, 1, s.State().Index)
	assert.Equal(t, Forward, s.State().Direction)
	assert.True(t, s.State().AutoAdvancing)

	s.Pause()
	s.Pause()
	assert.False(t, s.State().AutoAdvancing)
	assert.False(t, s.Tick())
	assert.Equal(t, 1, s.State().Index)

	s.Resume()
	s.Resume()
	assert.True(t, s.State().AutoAdvancing)
	assert.True(t, s.Tick())
	assert.True(t, s.Tick())
	assert.Equal(t, 0, s.State().Index)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "backward", Backward.String())
	assert.Equal(t, "still", Still.String())
}
