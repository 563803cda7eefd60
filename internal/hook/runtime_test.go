package hook

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/kingfisher-tools/hooks/internal/command"
)

func TestDetectRuntime(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m *command.MockRunner)
		want      string
	}{
		{
			name: "podman on PATH",
			setupMock: func(m *command.MockRunner) {
				m.EXPECT().LookPath("podman").Return("/usr/bin/podman", nil)
			},
			want: "podman",
		},
		{
			name: "docker fallback",
			setupMock: func(m *command.MockRunner) {
				m.EXPECT().LookPath("podman").Return("", errors.New("executable file not found in $PATH"))
			},
			want: "/usr/bin/docker",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRunner := command.NewMockRunner(ctrl)
			tt.setupMock(mockRunner)

			assert.Equal(t, tt.want, DetectRuntime(mockRunner))
		})
	}
}
