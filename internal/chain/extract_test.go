package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFromObjectChanges(t *testing.T) {
	result := &CallResult{
		Digest: "d1",
		ObjectChanges: []ObjectChange{
			{Type: "mutated", ObjectType: "0x2::coin::Coin", ObjectID: "0xcoin"},
			{Type: "created", ObjectType: "0xpkg::auction_house::AuctionHouse", ObjectID: "0xhouse"},
		},
	}
	assert.Equal(t, "0xhouse", ExtractCreatedObjectID(result, "AuctionHouse"))
}

func TestExtractTypeHintFiltersCreated(t *testing.T) {
	result := &CallResult{
		ObjectChanges: []ObjectChange{
			{Type: "created", ObjectType: "0xpkg::auction_house::AdminCap", ObjectID: "0xcap"},
			{Type: "created", ObjectType: "0xpkg::auction_house::Auction", ObjectID: "0xauction"},
		},
	}
	assert.Equal(t, "0xauction", ExtractCreatedObjectID(result, "Auction"))
}

func TestExtractEmptyHintTakesFirstCreated(t *testing.T) {
	result := &CallResult{
		ObjectChanges: []ObjectChange{
			{Type: "created", ObjectType: "0xpkg::auction_house::AdminCap", ObjectID: "0xcap"},
		},
	}
	assert.Equal(t, "0xcap", ExtractCreatedObjectID(result, ""))
}

func TestExtractFallbackToEffects(t *testing.T) {
	result := &CallResult{
		ObjectChanges: []ObjectChange{
			{Type: "mutated", ObjectType: "0x2::coin::Coin", ObjectID: "0xcoin"},
		},
		Effects: &Effects{
			Created: []CreatedObject{{Reference: ObjectRef{ObjectID: "0xlegacy"}}},
		},
	}
	assert.Equal(t, "0xlegacy", ExtractCreatedObjectID(result, "AuctionHouse"))
}

func TestExtractFallbackToDirectObjectID(t *testing.T) {
	result := &CallResult{ObjectID: "0xdirect"}
	assert.Equal(t, "0xdirect", ExtractCreatedObjectID(result, "AuctionHouse"))
}

func TestExtractNothingFound(t *testing.T) {
	assert.Equal(t, "", ExtractCreatedObjectID(&CallResult{Digest: "d"}, "AuctionHouse"))
	assert.Equal(t, "", ExtractCreatedObjectID(nil, "AuctionHouse"))
}
