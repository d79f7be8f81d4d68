// Package main regenerates the word34567.txt fixture used by the NervesMOTD
// tests. The words are the fwup nickname list; there shouldn't be a need to run
// this unless fwup changes how it generates nicknames.
//
// Usage (from the support directory):
//
//	go run ./cmd/create_wordlist
//	go run ./cmd/create_wordlist check
//	go run ./cmd/create_wordlist show 255
//	go run ./cmd/create_wordlist config init
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"wordfixture/internal/config"
	"wordfixture/internal/fixture"
	"wordfixture/internal/logging"
	"wordfixture/internal/wordlist"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cli carries state shared between the root command and its subcommands.
type cli struct {
	// Flags
	verbose    bool
	configPath string
	outputPath string
	force      bool

	newLogger func(config.LoggingConfig, bool) (*zap.Logger, error)

	cfg    *config.Config
	logger *zap.Logger
}

func newCLI() *cli {
	return &cli{newLogger: logging.New}
}

func (c *cli) command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "create_wordlist",
		Short: "Regenerate the word34567.txt test fixture",
		Long: `Writes the 256 fwup nickname words, one per line, to the fixture file.

The words are decoded from a packed constant where each row holds five words of
lengths 3 through 7. Run without arguments to regenerate
../test/fixture/word34567.txt.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE:              c.runGenerate,
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", config.DefaultPath, "Config file (missing file uses defaults)")
	rootCmd.PersistentFlags().StringVarP(&c.outputPath, "output", "o", "", "Fixture path (default "+fixture.DefaultPath+")")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the fixture on disk matches the generated word list",
		Args:  cobra.NoArgs,
		RunE:  c.runCheck,
	}

	showCmd := &cobra.Command{
		Use:   "show [index]",
		Short: "Print one word, or every word when no index is given",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.runShow,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the wordfixture config file",
	}

	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the --config path",
		Args:  cobra.NoArgs,
		RunE:  c.runConfigInit,
	}
	configInitCmd.Flags().BoolVar(&c.force, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(configCmd)
	return rootCmd
}

func main() {
	os.Exit(newCLI().run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code. The logger
// is flushed on every path, including failures.
func (c *cli) run(args []string, stdout, stderr io.Writer) int {
	cmd := c.command()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if c.logger != nil {
		_ = c.logger.Sync()
	}
	if err != nil {
		fmt.Fprintf(stderr, "create_wordlist: %v\n", err)
		return 1
	}
	return 0
}

// setup loads config and builds the logger. Flags override config and
// environment.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.outputPath != "" {
		cfg.Output.Path = c.outputPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := c.newLogger(cfg.Logging, c.verbose)
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.logger = logger
	logging.For(logger, logging.CategoryCLI).Debug("Config loaded",
		zap.String("config", c.configPath),
		zap.String("output", cfg.Output.Path),
		zap.String("command", cmd.Name()))
	return nil
}

func (c *cli) writer() *fixture.Writer {
	return fixture.New(logging.For(c.logger, logging.CategoryFixture))
}

// runGenerate writes the fixture. This is the default action.
func (c *cli) runGenerate(cmd *cobra.Command, args []string) error {
	if err := wordlist.Validate(); err != nil {
		return err
	}
	if err := c.writer().Write(c.cfg.Output.Path); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Success.")
	return nil
}

func (c *cli) runCheck(cmd *cobra.Command, args []string) error {
	if err := c.writer().Verify(c.cfg.Output.Path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date.\n", c.cfg.Output.Path)
	return nil
}

func (c *cli) runShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, w := range wordlist.Words() {
			fmt.Fprintln(out, w)
		}
		return nil
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[0], err)
	}
	word, err := wordlist.At(index)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, word)
	return nil
}

// runConfigInit saves the effective configuration (defaults, file, env and
// flags merged) so it can be edited.
func (c *cli) runConfigInit(cmd *cobra.Command, args []string) error {
	if !c.force {
		if _, err := os.Stat(c.configPath); err == nil {
			return fmt.Errorf("config %s already exists (use --force to overwrite)", c.configPath)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", c.configPath, err)
		}
	}
	if err := c.cfg.Save(c.configPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s.\n", c.configPath)
	return nil
}
