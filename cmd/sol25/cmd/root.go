package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "sol25",
	Short: "SOL25 interpreter",
	Long: `sol25 runs SOL25 programs already parsed into their XML AST form.

SOL25 is a small pure-object Smalltalk-flavored language: every value is
an instance of some class rooted at Object, message sends are resolved
through a class/method registry with single inheritance, and blocks
carry their own parameters, locals, and captured self.

This interpreter implements the core of the language only: it does not
lex or parse SOL25 source itself — the AST input is expected to already
be in XML form.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
