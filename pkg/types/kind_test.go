package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "Fire", KindFire.String())
	assert.Equal(t, "Water", KindWater.String())
	assert.Equal(t, "Grass", KindGrass.String())
	assert.Equal(t, "Electric", KindElectric.String())
	assert.Equal(t, "Unknown", Kind(42).String())
}

func TestKindRankFollowsDeclarationOrder(t *testing.T) {
	kinds := Kinds()
	for i := 1; i < len(kinds); i++ {
		assert.Less(t, kinds[i-1].Rank(), kinds[i].Rank())
	}
	assert.Greater(t, Kind(-1).Rank(), KindElectric.Rank(), "unknown kinds sort last")
}

func TestKindsReturnsCopy(t *testing.T) {
	k := Kinds()
	k[0] = KindElectric
	assert.Equal(t, KindFire, Kinds()[0])
}

func TestParseKindChoice(t *testing.T) {
	tests := []struct {
		in     string
		want   Kind
		wantOK bool
	}{
		{"1", KindFire, true},
		{"2", KindWater, true},
		{"3", KindGrass, true},
		{"4", KindElectric, true},
		{"0", KindFire, false},
		{"5", KindFire, false},
		{"", KindFire, false},
		{"Water", KindFire, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseKindChoice(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestGenderString(t *testing.T) {
	assert.Equal(t, "Male", GenderMale.String())
	assert.Equal(t, "Female", GenderFemale.String())
	assert.Equal(t, "Unknown", Gender(7).String())
}

func TestParseGenderChoice(t *testing.T) {
	tests := []struct {
		in     string
		want   Gender
		wantOK bool
	}{
		{"1", GenderMale, true},
		{"2", GenderFemale, true},
		{"3", GenderMale, false},
		{"", GenderMale, false},
		{"f", GenderMale, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseGenderChoice(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
