package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Pattern
		wantErr bool
	}{
		{"mixed", "w-m--", PatternOf(Misplaced, None, Exact, None, None), false},
		{"upper case", "MMWW-", PatternOf(Exact, Exact, Misplaced, Misplaced, None), false},
		{"surrounding space", "  mmmmm\n", AllExact(5), false},
		{"empty", "", Pattern{}, true},
		{"bad symbol", "mx---", Pattern{}, true},
		{"too long", "-----------------", Pattern{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePattern(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPattern_StringRoundTrip(t *testing.T) {
	for _, text := range []string{"-----", "w-m--", "mmmmm", "wwwww", "m"} {
		p, err := ParsePattern(text)
		require.NoError(t, err)
		assert.Equal(t, text, p.String())
		assert.Equal(t, len(text), p.Len())
	}
}

func TestPattern_Solved(t *testing.T) {
	assert.True(t, AllExact(5).Solved())
	assert.True(t, AllExact(1).Solved())
	assert.False(t, NewPattern(5).Solved())
	assert.False(t, NewPattern(0).Solved())
	assert.False(t, AllExact(5).Set(4, Misplaced).Solved())
}

func TestPattern_Count(t *testing.T) {
	p := PatternOf(Misplaced, None, Exact, None, Exact)
	assert.Equal(t, 2, p.Count(Exact))
	assert.Equal(t, 1, p.Count(Misplaced))
	assert.Equal(t, 2, p.Count(None))
}

func TestPattern_UsableAsMapKey(t *testing.T) {
	counts := map[Pattern]int{}
	counts[PatternOf(Exact, None)]++
	counts[PatternOf(Exact, None)]++
	counts[PatternOf(None, Exact)]++

	assert.Equal(t, 2, counts[PatternOf(Exact, None)])
	assert.Equal(t, 1, counts[PatternOf(None, Exact)])
	assert.NotEqual(t, NewPattern(4), NewPattern(5))
}

func TestNewPattern_PanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { NewPattern(MaxWordLength + 1) })
	assert.Panics(t, func() { NewPattern(-1) })
}
