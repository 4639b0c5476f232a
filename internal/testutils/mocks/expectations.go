// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/forge-api/internal/entities/forge"
	forgesession "github.com/KirkDiggler/forge-api/internal/repositories/forge_session"
	forgesessionmock "github.com/KirkDiggler/forge-api/internal/repositories/forge_session/mock"
	playerrepo "github.com/KirkDiggler/forge-api/internal/repositories/player"
	playermock "github.com/KirkDiggler/forge-api/internal/repositories/player/mock"
)

// ExpectPlayerGet sets up a mock expectation for loading a player.
// A nil player with a nil error is not allowed; pass an error instead.
func ExpectPlayerGet(
	ctx context.Context, mockRepo *playermock.MockRepository,
	playerID string, player *forge.Player, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Get(ctx, playerrepo.GetInput{PlayerID: playerID}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Get(ctx, playerrepo.GetInput{PlayerID: playerID}).
		Return(&playerrepo.GetOutput{Player: player}, nil)
}

// ExpectPlayerSave sets up a mock expectation for saving a player and
// stores the saved document in saved when it is not nil
func ExpectPlayerSave(ctx context.Context, mockRepo *playermock.MockRepository, saved **forge.Player) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input playerrepo.SaveInput) (*playerrepo.SaveOutput, error) {
			if saved != nil {
				*saved = input.Player
			}
			return &playerrepo.SaveOutput{Player: input.Player}, nil
		})
}

// ExpectSessionGet sets up a mock expectation for loading a player's forge session
func ExpectSessionGet(
	ctx context.Context, mockRepo *forgesessionmock.MockRepository,
	playerID string, record *forgesession.Record, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Get(ctx, forgesession.GetInput{PlayerID: playerID}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Get(ctx, forgesession.GetInput{PlayerID: playerID}).
		Return(&forgesession.GetOutput{Record: record}, nil)
}

// ExpectSessionDelete sets up a mock expectation for deleting a player's forge session
func ExpectSessionDelete(ctx context.Context, mockRepo *forgesessionmock.MockRepository, playerID string) *gomock.Call {
	return mockRepo.EXPECT().
		Delete(ctx, forgesession.DeleteInput{PlayerID: playerID}).
		Return(&forgesession.DeleteOutput{Deleted: true}, nil)
}

// ExpectSessionUpdate sets up a mock expectation for replacing a player's forge
// session and stores the written record in stored when it is not nil
func ExpectSessionUpdate(
	ctx context.Context, mockRepo *forgesessionmock.MockRepository, stored **forgesession.Record,
) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input forgesession.UpdateInput) (*forgesession.UpdateOutput, error) {
			if stored != nil {
				*stored = input.Record
			}
			return &forgesession.UpdateOutput{Record: input.Record}, nil
		})
}
