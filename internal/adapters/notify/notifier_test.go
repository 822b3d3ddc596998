package notify_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/wrp/internal/adapters/notify"
	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func enabled() domain.NotifyConfig {
	return domain.NotifyConfig{Enabled: true, AppName: "matuwrap", TimeoutMS: 2000}
}

func TestNotifier_Notify(t *testing.T) {
	tests := []struct {
		name string
		msg  domain.Notification
		want []string
	}{
		{
			name: "defaults to normal urgency",
			msg:  domain.Notification{Title: "Audio", Message: "Switched to HDMI"},
			want: []string{"-t", "2000", "-u", "normal", "-a", "matuwrap", "Audio", "Switched to HDMI"},
		},
		{
			name: "with icon",
			msg:  domain.Notification{Title: "Audio", Message: "m", Icon: "audio-headset", Urgency: domain.UrgencyLow},
			want: []string{"-t", "2000", "-u", "low", "-a", "matuwrap", "-i", "audio-headset", "Audio", "m"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRunner := mocks.NewMockProcessRunner(ctrl)
			mockRunner.EXPECT().Run(gomock.Any(), "notify-send", tt.want).Return(nil, nil)

			require.NoError(t, notify.NewNotifier(mockRunner, enabled()).Notify(context.Background(), tt.msg))
		})
	}
}

func TestNotifier_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockProcessRunner(ctrl)

	cfg := enabled()
	cfg.Enabled = false
	require.NoError(t, notify.NewNotifier(mockRunner, cfg).Notify(context.Background(), domain.Notification{Title: "x"}))
}

func TestNotifier_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockProcessRunner(ctrl)
	mockRunner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrSpawnFailed)

	err := notify.NewNotifier(mockRunner, enabled()).Notify(context.Background(), domain.Notification{Title: "x"})
	require.ErrorIs(t, err, domain.ErrSpawnFailed)
}
