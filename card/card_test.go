package card_test

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/ratel-online/twentynine/card"
	"github.com/ratel-online/twentynine/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	deck := card.NewDeck()
	require.Len(t, deck, 32)
	seen := map[card.Card]bool{}
	for _, c := range deck {
		require.True(t, c.Valid(), c.String())
		require.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	deck := card.NewDeck()
	shuffled := card.Shuffle(deck, rand.New(rand.NewSource(7)))
	require.Len(t, shuffled, 32)
	assert.ElementsMatch(t, deck, shuffled)
	assert.NotEqual(t, deck, shuffled)
	assert.Equal(t, card.NewDeck(), deck, "input must not be modified")
}

func TestShuffleDeterministicForSeed(t *testing.T) {
	a := card.NewShuffledDeck(rand.New(rand.NewSource(42)))
	b := card.NewShuffledDeck(rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestShuffleSpreadsFirstCard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	counts := map[card.Card]int{}
	for i := 0; i < 3200; i++ {
		counts[card.NewShuffledDeck(rng)[0]]++
	}
	require.Len(t, counts, 32)
	for c, n := range counts {
		assert.True(t, n > 40 && n < 180, "%s came first %d times", c, n)
	}
}

func TestDeal(t *testing.T) {
	deck := card.NewShuffledDeck(rand.New(rand.NewSource(3)))
	tranches, err := card.Deal(deck, 4, 4, 4)
	require.NoError(t, err)
	require.Len(t, tranches, 4)

	all := card.Cards{}
	for seat, tr := range tranches {
		require.Len(t, tr.First, 4)
		require.Len(t, tr.Second, 4)
		assert.Equal(t, deck[seat*8:seat*8+4], tr.First)
		assert.Equal(t, deck[seat*8+4:seat*8+8], tr.Second)
		all = append(all, tr.First...)
		all = append(all, tr.Second...)
	}
	assert.ElementsMatch(t, deck, all)

	_, err = card.Deal(deck[:31], 4, 4, 4)
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		want card.Card
		err  error
	}{
		{text: "J hearts", want: card.New(card.Jack, card.Hearts)},
		{text: "10♦", want: card.New(card.Ten, card.Diamonds)},
		{text: "qs", want: card.New(card.Queen, card.Spades)},
		{text: "ace of clubs", want: card.New(card.Ace, card.Clubs)},
		{text: "7 c", want: card.New(card.Seven, card.Clubs)},
		{text: "6 hearts", err: consts.ErrorsCardInvalid},
		{text: "1 spades", err: consts.ErrorsCardInvalid},
		{text: "J stars", err: consts.ErrorsSuitInvalid},
		{text: "", err: consts.ErrorsCardInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := card.Parse(tt.text)
			if tt.err != nil {
				assert.Equal(t, tt.err, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCardJSON(t *testing.T) {
	bytes, err := json.Marshal(card.New(card.Jack, card.Hearts))
	require.NoError(t, err)
	assert.JSONEq(t, `{"suit":"hearts","rank":"J"}`, string(bytes))

	var c card.Card
	require.NoError(t, json.Unmarshal([]byte(`{"suit":"spades","rank":"10"}`), &c))
	assert.Equal(t, card.New(card.Ten, card.Spades), c)

	assert.Error(t, json.Unmarshal([]byte(`{"suit":"spades","rank":"2"}`), &c))
}

func TestCardsRemove(t *testing.T) {
	hand := card.Cards{card.New(card.Jack, card.Hearts), card.New(card.Nine, card.Clubs)}
	rest, ok := hand.Remove(card.New(card.Jack, card.Hearts))
	require.True(t, ok)
	assert.Equal(t, card.Cards{card.New(card.Nine, card.Clubs)}, rest)
	assert.Len(t, hand, 2)

	_, ok = hand.Remove(card.New(card.Ace, card.Spades))
	assert.False(t, ok)
	assert.True(t, hand.HasSuit(card.Clubs))
	assert.False(t, hand.HasSuit(card.Spades))
}
