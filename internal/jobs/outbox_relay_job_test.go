package jobs

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"sales/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRelayer struct {
	mock.Mock
}

func (m *MockRelayer) Handle(ctx context.Context, command commands.RelayOutboxCommand) (int, error) {
	args := m.Called(ctx, command)
	return args.Int(0), args.Error(1)
}

var discardLogger = slog.New(slog.DiscardHandler)

func TestOutboxRelayJob_RunOnce_PassesBatchSize(t *testing.T) {
	relayer := new(MockRelayer)
	relayer.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RelayOutboxCommand) bool {
		return cmd.BatchSize() == 25
	})).Return(3, nil).Once()

	NewOutboxRelayJob(relayer, 25, discardLogger).RunOnce(t.Context())

	relayer.AssertExpectations(t)
}

func TestOutboxRelayJob_RunOnce_ToleratesFailures(t *testing.T) {
	for _, err := range []error{commands.ErrNoOutboxMessages, errors.New("broker down")} {
		relayer := new(MockRelayer)
		relayer.On("Handle", mock.Anything, mock.Anything).Return(0, err).Once()

		assert.NotPanics(t, func() {
			NewOutboxRelayJob(relayer, 10, discardLogger).RunOnce(t.Context())
		})
		relayer.AssertExpectations(t)
	}
}

func TestOutboxRelayJob_Start_RejectsInvalidBatchSize(t *testing.T) {
	job := NewOutboxRelayJob(new(MockRelayer), 0, discardLogger)

	require.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	relayer := new(MockRelayer)
	relayer.On("Handle", mock.Anything, mock.Anything).Return(0, commands.ErrNoOutboxMessages).Maybe()

	manager := NewJobManager(relayer, 10, discardLogger)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
