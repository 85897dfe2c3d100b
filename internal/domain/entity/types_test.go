package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCollectibleType(t *testing.T) {
	tests := []struct {
		tag    string
		want   CollectibleType
		wantOK bool
	}{
		{"coin-gold", CoinGold, true},
		{"coin-silver", CoinSilver, true},
		{"coin-bronze", CoinBronze, true},
		{"heart", Heart, true},
		{"jewel", Jewel, true},
		{"key", Key, true},
		{"mystery-orb", CollectibleGeneric, false},
		{"", CollectibleGeneric, false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, ok := ParseCollectibleType(tt.tag)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestCollectibleType_Score(t *testing.T) {
	tests := []struct {
		typ  CollectibleType
		want int
	}{
		{CoinGold, 100},
		{CoinSilver, 50},
		{CoinBronze, 25},
		{Heart, 200},
		{Jewel, 500},
		{Key, 300},
		{CollectibleGeneric, 50},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.Score())
		})
	}
}

func TestCollectibleType_IsCoin(t *testing.T) {
	assert.True(t, CoinGold.IsCoin())
	assert.True(t, CoinSilver.IsCoin())
	assert.True(t, CoinBronze.IsCoin())
	assert.True(t, CollectibleGeneric.IsCoin())
	assert.False(t, Heart.IsCoin())
	assert.False(t, Jewel.IsCoin())
	assert.False(t, Key.IsCoin())
}

func TestParseGoalType(t *testing.T) {
	g, ok := ParseGoalType("reach_flag")
	assert.True(t, ok)
	assert.Equal(t, GoalReachFlag, g)

	g, ok = ParseGoalType("bogus")
	assert.False(t, ok)
	assert.Equal(t, GoalCollectAllCoins, g, "unknown goals fall back to collect_all_coins")
}

func TestParseActionTag(t *testing.T) {
	a, ok := ParseActionTag("flag")
	assert.True(t, ok)
	assert.Equal(t, ActionFlag, a)

	a, ok = ParseActionTag("finish")
	assert.True(t, ok)
	assert.Equal(t, ActionFlag, a)

	a, ok = ParseActionTag("")
	assert.True(t, ok)
	assert.Equal(t, ActionNone, a)

	_, ok = ParseActionTag("teleport")
	assert.False(t, ok)
}

func TestPlaceholderColor_Deterministic(t *testing.T) {
	assert.Equal(t, PlaceholderColor(1), PlaceholderColor(1))
	assert.Equal(t, PlaceholderColor(0), PlaceholderColor(len(placeholderPalette)), "palette wraps")
	assert.Equal(t, PlaceholderColor(0), PlaceholderColor(-3), "negative indexes clamp")
}
