package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/formbuilder/internal/theme"
	fberrors "github.com/alexisbeaulieu97/formbuilder/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `log:
  level: debug
  file: /tmp/formbuilder.log
ui:
  theme: theme2
  palette_expanded: true
themes:
  theme2:
    accent: "#16a34a"
    border: thick
  theme3:
    foreground: "94"
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed over defaults",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "debug", cfg.Log.Level)
				require.True(t, cfg.Log.HumanReadable, "unset keys keep defaults")
				require.True(t, cfg.UI.Mouse)
				require.Equal(t, "theme2", cfg.UI.Theme)
				require.Len(t, cfg.Themes, 2)
			},
		},
		{
			name:     "empty document yields defaults",
			contents: "  \n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), cfg)
			},
		},
		{
			name:     "malformed yaml reports a line",
			contents: "ui:\n  theme: [theme1\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *fberrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, "config.yaml", parseErr.Path)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "unknown keys are rejected",
			contents: "ui:\n  colour: red\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *fberrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "unknown active theme fails validation",
			contents: "ui:\n  theme: theme4\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var valErr *fberrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "ui.theme", valErr.Field)
				require.Contains(t, valErr.Message, "theme_id")
			},
		},
		{
			name:     "unknown theme override key fails validation",
			contents: "themes:\n  theme9:\n    accent: \"1\"\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var valErr *fberrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "themes[theme9]", valErr.Field)
			},
		},
		{
			name:     "bad colour fails validation",
			contents: "themes:\n  theme1:\n    background: blue\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var valErr *fberrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "themes[theme1].background", valErr.Field)
				require.Contains(t, valErr.Message, "term_color")
			},
		},
		{
			name:     "bad log level fails validation",
			contents: "log:\n  level: chatty\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var valErr *fberrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "log.level", valErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Parse("config.yaml", []byte(tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: theme3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, theme.Theme3, cfg.InitialState().ActiveTheme)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *fberrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 0, extractLine(os.ErrNotExist))
}
