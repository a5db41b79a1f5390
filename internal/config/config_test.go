package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sghaida/studentdi/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTempFile writes content under a fresh temp dir and returns its path.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	assert.Equal(t, "Advanced Java Programming", cfg.Course.Title)
	assert.Equal(t, "CSE-501", cfg.Course.Code)
	assert.Equal(t, "John Doe", cfg.Student.Name)
	assert.Equal(t, 101, cfg.Student.RollNumber)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
	require.NoError(t, cfg.Validate())
}

func TestLoad_NoFileNoEnv(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_YAMLFile(t *testing.T) {
	p := writeTempFile(t, "demo.yaml", `
course:
  title: Distributed Systems
  code: CSE-610
student:
  roll_number: 42
log:
  level: debug
  pretty: true
`)

	cfg, err := config.Load(p)
	require.NoError(t, err)

	assert.Equal(t, "Distributed Systems", cfg.Course.Title)
	assert.Equal(t, "CSE-610", cfg.Course.Code)
	// untouched keys keep their defaults
	assert.Equal(t, "John Doe", cfg.Student.Name)
	assert.Equal(t, 42, cfg.Student.RollNumber)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeTempFile(t, "demo.yaml", "student:\n  name: From File\n  roll_number: 5\n")

	t.Setenv("ODI_STUDENT_NAME", "From Env")
	t.Setenv("ODI_COURSE_CODE", "ENV-1")
	t.Setenv("ODI_LOG_LEVEL", "error")

	cfg, err := config.Load(p)
	require.NoError(t, err)

	assert.Equal(t, "From Env", cfg.Student.Name)
	assert.Equal(t, 5, cfg.Student.RollNumber)
	assert.Equal(t, "ENV-1", cfg.Course.Code)
	assert.Equal(t, "Advanced Java Programming", cfg.Course.Title)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name    string
		path    func(t *testing.T) string
		env     map[string]string
		wantSub string
		wantIs  error
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			wantSub: "read config file",
		},
		{
			name:    "invalid yaml",
			path:    func(t *testing.T) string { return writeTempFile(t, "bad.yaml", "course: [unterminated\n") },
			wantSub: "parse config file",
		},
		{
			name:    "roll number not an int",
			path:    func(t *testing.T) string { return "" },
			env:     map[string]string{"ODI_STUDENT_ROLL_NUMBER": "abc"},
			wantSub: "parse env",
		},
		{
			name:   "unknown log level",
			path:   func(t *testing.T) string { return "" },
			env:    map[string]string{"ODI_LOG_LEVEL": "chatty"},
			wantIs: config.ErrInvalidLogLevel,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := config.Load(tc.path(t))
			require.Error(t, err)
			if tc.wantSub != "" {
				assert.Contains(t, err.Error(), tc.wantSub)
			}
			if tc.wantIs != nil {
				assert.ErrorIs(t, err, tc.wantIs)
			}
		})
	}
}
