package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nerdbank/teller/internal/bank"
	"github.com/nerdbank/teller/internal/buildinfo"
	"github.com/nerdbank/teller/internal/config"
	"github.com/nerdbank/teller/internal/ledger"
	"github.com/nerdbank/teller/internal/log"
	"github.com/nerdbank/teller/internal/session"
)

const secretBackdoor = "backdoor"

type rootOptions struct {
	configPath string
	verbose    bool
	logJSON    bool
	auditLog   string
	secret     string
	prompt     bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:     "teller",
		Short:   "Interactive bank teller",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Init(log.Options{
				Verbose:    opts.verbose,
				JSONFormat: opts.logJSON,
				Stderr:     cmd.ErrOrStderr(),
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTeller(cmd, opts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to "+config.FileName+" (built-in defaults when empty)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&opts.logJSON, "log-json", false, "log as JSON")

	f := rootCmd.Flags()
	f.StringVar(&opts.auditLog, "audit-log", "", "append the session's transactions to this CSV file on exit")
	f.StringVar(&opts.secret, "secret", "", "")
	_ = f.MarkHidden("secret")
	f.BoolVar(&opts.prompt, "prompt", false, "print the menu and prompt even when stdin is not a terminal")

	rootCmd.AddCommand(newCustomersCommand(&opts))
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newAuditCommand())

	return rootCmd
}

func runTeller(cmd *cobra.Command, opts rootOptions) error {
	if opts.secret != "" && opts.secret != secretBackdoor {
		return fmt.Errorf("invalid --secret value %q", opts.secret)
	}

	b, err := loadBank(opts.configPath)
	if err != nil {
		return err
	}

	log.StartSession()
	log.Info("session started", "bank", b.Name(), "customers", len(b.Customers()))

	l := ledger.New()
	in := cmd.InOrStdin()
	s := session.New(b, l, in, cmd.OutOrStdout(), session.Options{
		Interactive: opts.prompt || isTerminal(in),
		Backdoor:    opts.secret == secretBackdoor,
	})

	runErr := s.Run(cmd.Context())
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}

	entries := l.Entries()
	if opts.auditLog != "" && len(entries) > 0 {
		if err := ledger.AppendFile(opts.auditLog, entries); err != nil {
			log.Error("audit log not written", "path", opts.auditLog, "transactions", len(entries), "error", err)
			return errors.Join(runErr, fmt.Errorf("writing audit log: %w", err))
		}
	}
	log.Info("session ended", "transactions", len(entries), "summary", ledger.Summary(entries))
	return runErr
}

func loadBank(configPath string) (*bank.Bank, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}
	b, err := bank.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("setting up bank: %w", err)
	}
	return b, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
