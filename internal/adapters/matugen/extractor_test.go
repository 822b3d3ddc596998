package matugen_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wrp/internal/adapters/matugen"
	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestParseColors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want map[string]string
	}{
		{
			name: "dark preferred over default",
			data: `{"colors":{"primary":{"dark":"#112233","default":"#000000"}}}`,
			want: map[string]string{"primary": "#112233"},
		},
		{
			name: "default when dark missing",
			data: `{"colors":{"primary":{"light":"#ffffff","default":"#445566"}}}`,
			want: map[string]string{"primary": "#445566"},
		},
		{
			name: "default when dark not a string",
			data: `{"colors":{"primary":{"dark":null,"default":"#445566"}}}`,
			want: map[string]string{"primary": "#445566"},
		},
		{
			name: "raw string value",
			data: `{"colors":{"tertiary":"#abcdef"}}`,
			want: map[string]string{"tertiary": "#abcdef"},
		},
		{
			name: "unusable entries skipped",
			data: `{"colors":{"a":{"light":"#fff"},"b":null,"c":42,"d":["#000"],"e":{"dark":"#010101"}}}`,
			want: map[string]string{"e": "#010101"},
		},
		{
			name: "colors not an object",
			data: `{"colors":[1,2,3]}`,
			want: map[string]string{},
		},
		{
			name: "colors null",
			data: `{"colors":null}`,
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := matugen.ParseColors([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColors_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "no colors key", data: `{"image":"x"}`, wantErr: domain.ErrColorsMissing},
		{name: "not json", data: `matugen: error`, wantErr: domain.ErrInvalidExtractionOutput},
		{name: "top level array", data: `[]`, wantErr: domain.ErrInvalidExtractionOutput},
		{name: "empty", data: ``, wantErr: domain.ErrInvalidExtractionOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := matugen.ParseColors([]byte(tt.data))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExtractor_Extract(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockProcessRunner(ctrl)

	mockRunner.EXPECT().
		Run(gomock.Any(), "matugen", []string{
			"image", "/w/a.png", "--dry-run", "--json", "hex",
			"--type", "scheme-tonal-spot", "--mode", "dark",
		}).
		Return([]byte(`{"colors":{"primary":{"dark":"#112233"}}}`), nil)

	ex := matugen.NewExtractor(mockRunner, "matugen", "scheme-tonal-spot")
	got, err := ex.Extract(context.Background(), "/w/a.png")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"primary": "#112233"}, got)
}

func TestExtractor_Extract_RunnerFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockProcessRunner(ctrl)
	mockRunner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrProcessFailed)

	ex := matugen.NewExtractor(mockRunner, "matugen", "scheme-tonal-spot")
	_, err := ex.Extract(context.Background(), "/w/a.png")
	require.ErrorIs(t, err, domain.ErrProcessFailed)
}
