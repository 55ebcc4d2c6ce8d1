package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptYesNoIO(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"yes word", "yes\n", true},
		{"uppercase", "Y\n", true},
		{"no", "n\n", false},
		{"empty enter", "\n", false},
		{"carriage return only", "y\r", true},
		{"crlf", "y\r\n", true},
		{"eof without newline", "yes", true},
		{"eof empty", "", false},
		{"garbage", "maybe\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := new(bytes.Buffer)
			got := promptYesNoIO(strings.NewReader(tt.input), out, "Proceed? [y/N]: ")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Proceed? [y/N]: ", out.String())
		})
	}
}

func TestConfirm_SkipsPromptWhenPreApproved(t *testing.T) {
	app := &App{}
	assert.True(t, confirm(app, true, "Sure?"), "--yes bypasses the prompt")

	app.IsInteractive = func() bool { return false }
	assert.True(t, confirm(app, false, "Sure?"), "hook invocations never block on a prompt")
}
