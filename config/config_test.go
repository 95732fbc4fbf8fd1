package config

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	cfg := New(nil)
	if cfg.Remote != DefaultRemote {
		t.Fatalf("expected remote %q, got %q", DefaultRemote, cfg.Remote)
	}
	if cfg.ConfigFile != DefaultConfigFile {
		t.Fatalf("expected config file %q, got %q", DefaultConfigFile, cfg.ConfigFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestConfigOverrides(t *testing.T) {
	cfg := New(&Config{Remote: "upstream", Dryrun: true})
	require.Equal(t, "upstream", cfg.Remote)
	require.Equal(t, DefaultConfigFile, cfg.ConfigFile)
	require.True(t, cfg.Dryrun)
}

func newTestFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("tagenv", pflag.ContinueOnError)
	flags.StringP("remote", "r", DefaultRemote, "")
	flags.StringP("config", "c", DefaultConfigFile, "")
	flags.BoolP("dry-run", "n", false, "")
	flags.BoolP("verbose", "v", false, "")
	flags.BoolP("quiet", "q", false, "")
	flags.Bool("no-color", false, "")
	return flags
}

func TestLoad(t *testing.T) {
	tcs := []struct {
		name         string
		args         []string
		environ      map[string]string
		expectRemote string
		expectFile   string
		expectDryrun bool
	}{
		{
			name:         "defaults",
			expectRemote: "origin",
			expectFile:   ".tagenv.json",
		},
		{
			name:         "env",
			environ:      map[string]string{"TAGENV_REMOTE": "upstream", "TAGENV_DRY_RUN": "true"},
			expectRemote: "upstream",
			expectFile:   ".tagenv.json",
			expectDryrun: true,
		},
		{
			name:         "flags-beat-env",
			args:         []string{"--remote", "fork", "-c", "envs.json"},
			environ:      map[string]string{"TAGENV_REMOTE": "upstream"},
			expectRemote: "fork",
			expectFile:   "envs.json",
		},
		{
			name:         "unset-flags-keep-env",
			args:         []string{"-n"},
			environ:      map[string]string{"TAGENV_CONFIG": "other.json"},
			expectRemote: "origin",
			expectFile:   "other.json",
			expectDryrun: true,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.environ {
				t.Setenv(k, v)
			}
			flags := newTestFlags()
			require.NoError(t, flags.Parse(tc.args))

			tio := TerminalIO{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
			cfg, err := Load(flags, &tio)
			require.NoError(t, err)
			require.Equal(t, tc.expectRemote, cfg.Remote)
			require.Equal(t, tc.expectFile, cfg.ConfigFile)
			require.Equal(t, tc.expectDryrun, cfg.Dryrun)
		})
	}
}

func TestQuietPrintf(t *testing.T) {
	ob := &bytes.Buffer{}
	eb := &bytes.Buffer{}
	cfg := NewWithTerminalIO(&Config{Quiet: true}, &TerminalIO{Stdout: ob, Stderr: eb})
	cfg.Printf("hidden")
	cfg.Errorf("shown")
	require.Empty(t, ob.String())
	require.Equal(t, "shown\n", eb.String())
}

func TestDebugf(t *testing.T) {
	eb := &bytes.Buffer{}
	cfg := NewWithTerminalIO(nil, &TerminalIO{Stdout: &bytes.Buffer{}, Stderr: eb})
	cfg.Debugf("not at info level")
	require.Empty(t, eb.String())

	cfg = NewWithTerminalIO(&Config{Debug: true}, &TerminalIO{Stdout: &bytes.Buffer{}, Stderr: eb})
	cfg.Debugf("tag %s", "v1.2.3")
	require.Contains(t, eb.String(), "tag v1.2.3")
}
