package handrange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		want  []string
	}{
		{name: "pocket aces", token: "AA", want: []string{"AA"}},
		{name: "ace king suited", token: "AKs", want: []string{"AKs"}},
		{name: "ace king offsuit", token: "AKo", want: []string{"AKo"}},
		{name: "ace king any", token: "AK", want: []string{"AKs", "AKo"}},
		{
			name:  "pairs plus",
			token: "88+",
			want:  []string{"88", "99", "TT", "JJ", "QQ", "KK", "AA"},
		},
		{name: "deuces plus", token: "22+", want: []string{"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22"}},
		{name: "aces plus", token: "AA+", want: []string{"AA"}},
		{name: "suited plus", token: "AJs+", want: []string{"AJs", "AQs", "AKs"}},
		{name: "offsuit plus", token: "AQo+", want: []string{"AQo", "AKo"}},
		{name: "combined plus", token: "AQ+", want: []string{"AQs", "AKs", "AQo", "AKo"}},
		{name: "king anchor stops below king", token: "K9s+", want: []string{"K9s", "KTs", "KJs", "KQs"}},
		{name: "connector plus", token: "KQs+", want: []string{"KQs"}},
		{name: "pair span", token: "22-55", want: []string{"22", "33", "44", "55"}},
		{name: "pair span reversed", token: "55-22", want: []string{"22", "33", "44", "55"}},
		{name: "suited span", token: "A5s-A2s", want: []string{"A5s", "A4s", "A3s", "A2s"}},
		{name: "offsuit span", token: "KTo-KJo", want: []string{"KTo", "KJo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			set, err := Expand(tt.token)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, set.Labels())
		})
	}
}

func TestExpandMalformed(t *testing.T) {
	t.Parallel()

	for _, token := range []string{
		"",
		"A",
		"XX",
		"AAs",
		"AAs+",
		"KAs",
		"AKx",
		"AK+x",
		"akS",
		"AKs++",
		"22-A5s",
		"A5s-K2s",
		"A5s-A2o",
		"-",
		"AKso",
	} {
		t.Run(token, func(t *testing.T) {
			t.Parallel()
			_, err := Expand(token)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedToken)
		})
	}
}

func TestExpandIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"88+", "AJs+", "AQo+", "AQ+", "K9s+", "A5s-A2s"} {
		set := MustExpand(token)
		for _, label := range set.Labels() {
			again, err := Expand(label)
			require.NoError(t, err)
			assert.Equal(t, []string{label}, again.Labels(), "re-expanding %s from %s", label, token)
		}
	}
}

func TestExpandNeverProducesNonCanonicalHands(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"22+", "A2s+", "K2o+", "32+", "Q2+"} {
		for h := range MustExpand(token) {
			assert.True(t, h.Valid(), "%s produced %s", token, h)
		}
	}
}

func TestMustExpandPanics(t *testing.T) {
	assert.Panics(t, func() { MustExpand("ZZ") })
}

func TestParseRange(t *testing.T) {
	t.Parallel()

	tokens, err := ParseRange("88+, AJs+,KQs, ,AQo+")
	require.NoError(t, err)
	assert.Equal(t, []string{"88+", "AJs+", "KQs", "AQo+"}, tokens)

	_, err = ParseRange("88+, AQx")
	assert.ErrorIs(t, err, ErrMalformedToken)

	tokens, err = ParseRange("")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}
