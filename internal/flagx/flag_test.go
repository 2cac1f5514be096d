package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "keeps allowed flag with its value",
			args:    []string{"-d", "vault.db", "-r", "10"},
			allowed: []string{"-d"},
			want:    []string{"-d", "vault.db"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=conf.json", "-r", "10"},
			allowed: []string{"-c", "--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "order preserved across mixed forms",
			args:    []string{"--config=a.json", "-c", "b.json", "-x", "1"},
			allowed: []string{"-c", "--config"},
			want:    []string{"--config=a.json", "-c", "b.json"},
		},
		{
			name:    "unknown flags and positionals dropped",
			args:    []string{"-x", "1", "--y=2", "list"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "trailing flag without value kept",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next dash token is not a value",
			args:    []string{"-c", "-r"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "dash-prefixed value survives in equals form",
			args:    []string{"--config=--odd.json"},
			allowed: []string{"--config"},
			want:    []string{"--config=--odd.json"},
		},
		{
			name:    "several allowed flags",
			args:    []string{"-d", "vault.db", "-r", "10", "--other", "x"},
			allowed: []string{"-d", "-r"},
			want:    []string{"-d", "vault.db", "-r", "10"},
		},
		{
			name:    "empty input",
			args:    []string{},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "repeated flag kept in order",
			args:    []string{"-c", "one.json", "-c", "two.json"},
			allowed: []string{"-c"},
			want:    []string{"-c", "one.json", "-c", "two.json"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FilterArgs(tc.args, tc.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short form", func(t *testing.T) {
		os.Args = []string{"otpkeeper", "-c", "/etc/otpkeeper.json"}
		assert.Equal(t, "/etc/otpkeeper.json", JsonConfigFlags())
	})

	t.Run("long form", func(t *testing.T) {
		os.Args = []string{"otpkeeper", "-config", "/etc/otpkeeper.json"}
		assert.Equal(t, "/etc/otpkeeper.json", JsonConfigFlags())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"otpkeeper", "-d", "vault.db"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("last occurrence wins", func(t *testing.T) {
		os.Args = []string{"otpkeeper", "-c", "first.json", "-config", "second.json"}
		assert.Equal(t, "second.json", JsonConfigFlags())
	})
}
