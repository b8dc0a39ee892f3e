package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ruru-project/ruru/pkg/cli"
	"github.com/ruru-project/ruru/pkg/match"
	"github.com/ruru-project/ruru/pkg/progress"
	"github.com/ruru-project/ruru/pkg/release"
	"github.com/ruru-project/ruru/pkg/vcs"
	"github.com/ruru-project/ruru/pkg/version"
)

var (
	buildVersion = "dev"
	buildCommit  = "none"
)

const historyRows = 10

func main() {
	rootCmd := &cobra.Command{
		Use:          "release",
		Short:        "Cut a release: validate the tag history and tag the next version",
		Long:         `Reads the repository's release tags, checks that the history is ordered and sequential, derives the next version (interactively or with unattended defaults), then creates the release branch and tag, updates the changelog, and pushes.`,
		Version:      fmt.Sprintf("%s (%s)", buildVersion, buildCommit),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().String("config", "config.yml", "Name of the layered config file")
	rootCmd.Flags().String("environment", "", "Config environment to load (default from CONFIG_ACTIVE)")
	rootCmd.Flags().String("dir", "", "Repository working directory")
	rootCmd.Flags().Bool("non-interactive", false, "Never prompt; use unattended defaults")
	rootCmd.Flags().String("bump", "", "Bump kind: major | minor | micro (implies non-interactive selection)")
	rootCmd.Flags().String("marker", "", "Path of the version marker file")
	rootCmd.Flags().Bool("no-push", false, "Create the branch and tag locally only")
	rootCmd.Flags().String("github-repo", "", "GitHub repo (owner/repo) to publish the release in")
	rootCmd.Flags().String("github-token", os.Getenv("GITHUB_TOKEN"), "GitHub token for publishing")
	rootCmd.Flags().String("theme", "", "Output theme: default | dark | light | minimal")
	rootCmd.Flags().Bool("debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logrus.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	dir, _ := cmd.Flags().GetString("dir")
	cfgFile, _ := cmd.Flags().GetString("config")
	environment, _ := cmd.Flags().GetString("environment")

	cfg, err := release.Load(dir, cfgFile, environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load config file: %v (using defaults)\n", err)
		cfg = release.Default()
	}
	cfg = release.MergeFlags(cfg, cmd.Flags())

	theme, err := cli.ThemeByName(cfg.Theme)
	if err != nil {
		return err
	}

	heading, err := cli.Heading(theme, "Cut a release", 1)
	if err != nil {
		return err
	}
	fmt.Println(heading)
	fmt.Println(cli.Rule(0, ""))

	client := vcs.NewGitClient(dir)

	progress.Start("Reading release tags...")
	tags, err := client.Tags()
	progress.Stop()
	if err != nil {
		return err
	}

	if len(tags) > 0 {
		fmt.Println(release.HistoryTable(tags, historyRows))
	}

	ia, err := chooseInteraction(cmd, theme)
	if err != nil {
		return err
	}

	var publisher release.Publisher
	if cfg.GitHubRepo != "" {
		owner, repo, err := vcs.ParseRepo(cfg.GitHubRepo)
		if err != nil {
			return err
		}
		publisher = vcs.NewGitHubClient(owner, repo, cfg.GitHubToken)
	}

	next, err := release.Cut(release.CutParams{
		Tags:        tags,
		Client:      client,
		Config:      cfg,
		Interaction: ia,
		Publisher:   publisher,
		Out:         os.Stdout,
		Theme:       theme,
	})
	if err != nil {
		line, alertErr := cli.Alert(theme, cli.AlertError, err.Error())
		if alertErr == nil {
			fmt.Println(line)
		}
		return err
	}

	line, err := cli.Alert(theme, cli.AlertSuccess, fmt.Sprintf("release %s is ready", next))
	if err != nil {
		return err
	}
	fmt.Println(line)
	return nil
}

// chooseInteraction picks the prompting strategy: terminal prompts when
// attached to one, unattended defaults otherwise or when forced by flags.
func chooseInteraction(cmd *cobra.Command, theme cli.Theme) (release.Interaction, error) {
	nonInteractive, _ := cmd.Flags().GetBool("non-interactive")
	bumpName, _ := cmd.Flags().GetString("bump")

	if bumpName != "" {
		matched, err := match.MatchArg(bumpName, []string{"major", "minor", "micro"})
		if err != nil {
			return nil, err
		}
		kind, err := version.ParseBump(matched)
		if err != nil {
			return nil, err
		}
		return release.AutoInteraction{Bump: kind, ForceBump: true}, nil
	}

	if nonInteractive || !release.StdinIsTerminal() {
		return release.AutoInteraction{}, nil
	}
	return release.NewTerminalInteraction(os.Stdin, os.Stdout, theme), nil
}
