package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"

	"github.com/jeffrom/tagenv"
	"github.com/jeffrom/tagenv/config"
	"github.com/jeffrom/tagenv/prompt"
	"github.com/jeffrom/tagenv/registry"
	"github.com/jeffrom/tagenv/runner"
	"github.com/jeffrom/tagenv/vcs/gitcli"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(rawArgs []string) error {
	return runWithTerminalIO(rawArgs, nil)
}

func runWithTerminalIO(rawArgs []string, termio *config.TerminalIO) error {
	if termio == nil {
		termio = &config.DefaultTermIO
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	a := &app{termio: termio}
	cmd := newRootCmd(a)
	cmd.SetArgs(rawArgs[1:])
	cmd.SetIn(termio.Stdin)
	cmd.SetOut(termio.Stdout)
	cmd.SetErr(termio.Stderr)

	err := cmd.ExecuteContext(ctx)
	if runner.IsCancelled(err) {
		a.cfg.Printf("Cancelled.")
		return nil
	}
	return err
}

type app struct {
	termio *config.TerminalIO
	cfg    config.Config
	rnr    *runner.Runner
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags(), a.termio)
	if err != nil {
		return err
	}
	a.cfg = cfg

	git := gitcli.New(cfg, "")
	path := cfg.ConfigFile
	if !filepath.IsAbs(path) {
		root, err := git.TopLevel(cmd.Context())
		if err != nil {
			cfg.Debugf("not in a git work tree, using working directory: %v", err)
			root = "."
		}
		path = filepath.Join(root, path)
	}
	cfg.Debugf("environment config: %s", path)

	a.rnr = runner.New(cfg, git, registry.NewStore(path), prompt.New(*a.termio))
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	var version bool
	var printConfig bool

	root := &cobra.Command{
		Use:   "tagenv",
		Short: "Manage per-environment version tags in a git repository",
		Long: `tagenv tracks one version sequence per deployment environment, told apart
by tag prefix (v1.2.3 for prod, s1.2.3 for staging, d1.2.3 for dev, ...).

Environments are stored in .tagenv.json at the repository root. Without it,
the defaults are used: prod (v), sandbox (x), preprod (preprod), staging (s)
and dev (d).`,
		Example: `# show the latest tag of every environment
$ tagenv list

# discover tag prefixes and configure environments
$ tagenv setup

# create and push the next patch tag for staging
$ tagenv bump staging`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if version {
				a.cfg.Printf("%s", tagenv.Version)
				return nil
			}
			if printConfig {
				b, err := yaml.Marshal(a.cfg)
				if err != nil {
					return err
				}
				fmt.Fprint(a.cfg.Term.Stdout, string(b))
				return nil
			}
			return cmd.Usage()
		},
	}

	flags := root.PersistentFlags()
	flags.BoolP("dry-run", "n", false, "Don't create or push tags")
	flags.BoolP("verbose", "v", false, "print additional debugging info")
	flags.BoolP("quiet", "q", false, "print as little as necessary")
	flags.Bool("no-color", false, "disable colorized output")
	flags.StringP("remote", "r", config.DefaultRemote, "push to and fetch from remote `name`")
	flags.StringP("config", "c", config.DefaultConfigFile, "environment config `file`, relative to the repository root")
	root.Flags().BoolVarP(&version, "version", "V", false, "print version and exit")
	root.Flags().BoolVar(&printConfig, "print-config", false, "print configuration and exit")

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Show the latest tag of every environment",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.rnr.List(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "setup",
			Short: "Discover tag prefixes and configure environments",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.rnr.Setup(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "refresh",
			Short: "Fetch all tags from the remote, overwriting diverged local tags",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.rnr.Refresh(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Delete the environment config",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.rnr.Reset(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "bump [environment]",
			Short: "Create and push the next patch tag for an environment",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var key string
				if len(args) > 0 {
					key = args[0]
				}
				return a.rnr.Bump(cmd.Context(), key)
			},
		},
	)
	return root
}
