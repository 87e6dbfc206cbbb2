package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	conf, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), conf)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bstmap.yaml")
	data := "log_level: DEBUG\nlog_format: json\noutput: out.txt\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		LogLevel:  "debug",
		LogFormat: "json",
		Output:    "out.txt",
	}, conf)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bstmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0644))
	t.Setenv("BSTMAP_LOG_LEVEL", "error")

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", conf.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCheckConfig(t *testing.T) {
	tests := []struct {
		name string
		in   *Config
		want *Config
	}{
		{"nil", nil, Default()},
		{"empty", &Config{}, Default()},
		{"bad level", &Config{LogLevel: "loud", LogFormat: "json", Output: "x"},
			&Config{LogLevel: "info", LogFormat: "json", Output: "x"}},
		{"bad format", &Config{LogLevel: "warn", LogFormat: "xml", Output: "-"},
			&Config{LogLevel: "warn", LogFormat: "text", Output: "-"}},
		{"blank output", &Config{LogLevel: " Trace ", LogFormat: "TEXT", Output: "  "},
			&Config{LogLevel: "trace", LogFormat: "text", Output: "-"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkConfig(tt.in))
		})
	}
}

func TestConfig_String(t *testing.T) {
	assert.Equal(t, "LogLevel: info\nLogFormat: text\nOutput: -", Default().String())
}
