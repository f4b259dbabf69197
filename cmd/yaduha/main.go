// Command yaduha renders, samples and inspects sentences of the bundled
// constructed languages from the command line.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cours-de-latin/yaduha"
	"github.com/cours-de-latin/yaduha/languages"
)

const (
	Version = "0.1.0"
	appName = "yaduha"
)

var levelMapping = map[string]zerolog.Level{
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warning": zerolog.WarnLevel,
	"warn":    zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options carries the persistent flags to the subcommands.
type options struct {
	lang     string
	logLevel string
}

func (o *options) language() (yaduha.Language, error) {
	return languages.Lookup(o.lang)
}

func rootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Render structured sentences of small constructed languages",
		Long: `yaduha turns structured sentence documents (JSON) into surface text
for the bundled grammars, and can sample random sentences, list the
vocabulary, print the JSON Schema of a sentence and inflect verbs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lev, ok := levelMapping[opts.logLevel]
			if !ok {
				return fmt.Errorf("invalid logging level: %s", opts.logLevel)
			}
			zerolog.SetGlobalLevel(lev)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.RFC3339})
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.lang, "lang", "l", "ovp", "language, one of the registered grammars")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warning", "debug, info, warning or error")

	cmd.AddCommand(
		renderCmd(opts),
		sampleCmd(opts),
		examplesCmd(opts),
		vocabCmd(opts),
		schemaCmd(opts),
		inflectCmd(opts),
		lemmatizeCmd(opts),
		languagesCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)
	return cmd
}
