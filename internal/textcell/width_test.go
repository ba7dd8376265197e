package textcell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClassifier(t *testing.T) {
	tests := []struct {
		name string
		cap  Capability
		r    rune
		want int
	}{
		{name: "narrow host ignores wide runes", cap: Capability{}, r: '世', want: 1},
		{name: "runewidth ascii", cap: Capability{DoubleWide: true}, r: 'a', want: 1},
		{name: "runewidth cjk", cap: Capability{DoubleWide: true}, r: '世', want: 2},
		{name: "runewidth hangul", cap: Capability{DoubleWide: true}, r: '한', want: 2},
		{name: "runewidth control is one cell", cap: Capability{DoubleWide: true}, r: 0x07, want: 1},
		{name: "eastasian cjk", cap: Capability{DoubleWide: true, Table: TableEastAsian}, r: '世', want: 2},
		{name: "eastasian fullwidth", cap: Capability{DoubleWide: true, Table: TableEastAsian}, r: 'Ａ', want: 2},
		{name: "eastasian latin", cap: Capability{DoubleWide: true, Table: TableEastAsian}, r: 'é', want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewClassifier(tt.cap).Width(tt.r))
		})
	}
}

func TestClassifier_Substitutes(t *testing.T) {
	for _, c := range []Capability{
		{SubstituteNUL: true},
		{SubstituteNUL: true, DoubleWide: true},
		{SubstituteNUL: true, DoubleWide: true, Table: TableEastAsian},
	} {
		cls := NewClassifier(c)
		assert.True(t, cls.Substitutes(0), "%+v", c)
		assert.False(t, cls.Substitutes('a'), "%+v", c)
	}
	assert.False(t, NewClassifier(Capability{}).Substitutes(0))
}

func TestWidthFunc(t *testing.T) {
	cls := WidthFunc(func(r rune) int {
		switch r {
		case 'W':
			return 2
		case 'z':
			return 0
		}
		return 1
	})
	assert.Equal(t, 2, cls.Width('W'))
	assert.Equal(t, 1, cls.Width('z'))
	assert.Equal(t, 1, cls.Width('a'))
	assert.False(t, cls.Substitutes(0))
}
