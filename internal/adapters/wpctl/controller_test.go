package wpctl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wrp/internal/adapters/wpctl"
	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestController_Sinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockProcessRunner(ctrl)
	mockRunner.EXPECT().
		Run(gomock.Any(), "wpctl", []string{"status"}).
		Return([]byte("Sinks:\n │  *  34. Headset [vol: 0.60]\nSources:\n"), nil)

	sinks, err := wpctl.NewController(mockRunner, "wpctl").Sinks(context.Background())
	require.NoError(t, err)
	require.Len(t, sinks, 1)
	assert.Equal(t, uint32(34), sinks[0].ID)
	assert.True(t, sinks[0].IsDefault)
}

func TestController_Sinks_RunnerFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockProcessRunner(ctrl)
	mockRunner.EXPECT().Run(gomock.Any(), "wpctl", []string{"status"}).Return(nil, domain.ErrSpawnFailed)

	_, err := wpctl.NewController(mockRunner, "wpctl").Sinks(context.Background())
	require.ErrorIs(t, err, domain.ErrSpawnFailed)
}

func TestController_SetDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockProcessRunner(ctrl)
	mockRunner.EXPECT().Run(gomock.Any(), "wpctl", []string{"set-default", "58"}).Return(nil, nil)

	require.NoError(t, wpctl.NewController(mockRunner, "wpctl").SetDefault(context.Background(), 58))
}

func TestController_SetDefault_NonzeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockProcessRunner(ctrl)
	mockRunner.EXPECT().Run(gomock.Any(), "wpctl", []string{"set-default", "9"}).Return(nil, domain.ErrProcessFailed)

	err := wpctl.NewController(mockRunner, "wpctl").SetDefault(context.Background(), 9)
	require.ErrorIs(t, err, domain.ErrProcessFailed)
}
