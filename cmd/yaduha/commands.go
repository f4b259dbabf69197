package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cours-de-latin/yaduha"
	"github.com/cours-de-latin/yaduha/languages"
)

// readInput reads the named file, or stdin for "" and "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return data, nil
}

func display(s yaduha.Sentence, punctuate bool) string {
	if punctuate {
		return yaduha.Punctuate(s.String())
	}
	return s.String()
}

type renderedDoc struct {
	Text     string          `json:"text"`
	Sentence yaduha.Sentence `json:"sentence"`
}

func writeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func renderCmd(opts *options) *cobra.Command {
	var list, punctuate bool
	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a sentence document read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := opts.language()
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			var sentences []yaduha.Sentence
			if list {
				sentences, err = yaduha.DecodeList(lang, data)
			} else {
				var s yaduha.Sentence
				s, err = lang.Decode(data)
				sentences = []yaduha.Sentence{s}
			}
			if err != nil {
				if kind := yaduha.ErrorKind(err); kind != "" {
					log.Debug().Str("kind", kind).Str("language", lang.Name()).Msg("rejected document")
				}
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range sentences {
				fmt.Fprintln(out, display(s, punctuate))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, `input is a {"sentences": [...]} envelope`)
	cmd.Flags().BoolVarP(&punctuate, "punctuate", "p", false, "capitalise and add a full stop")
	return cmd
}

func sampleCmd(opts *options) *cobra.Command {
	var (
		n         int
		seed      uint64
		asJSON    bool
		punctuate bool
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print random well-formed sentences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := opts.language()
			if err != nil {
				return err
			}
			if n < 0 {
				return fmt.Errorf("-n must not be negative")
			}
			var r *rand.Rand
			if cmd.Flags().Changed("seed") {
				r = rand.New(rand.NewPCG(seed, seed))
			}
			log.Debug().Str("language", lang.Name()).Int("n", n).Msg("sampling")
			out := cmd.OutOrStdout()
			for s := range lang.SampleSeq(r, n) {
				if asJSON {
					if err := writeIndented(out, renderedDoc{Text: display(s, punctuate), Sentence: s}); err != nil {
						return err
					}
					continue
				}
				fmt.Fprintln(out, display(s, punctuate))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 5, "number of sentences")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible sample")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the structured documents too")
	cmd.Flags().BoolVarP(&punctuate, "punctuate", "p", false, "capitalise and add a full stop")
	return cmd
}

func examplesCmd(opts *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Print the few-shot examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := opts.language()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				type example struct {
					English string `json:"english"`
					renderedDoc
				}
				var docs []example
				for _, e := range lang.Examples() {
					docs = append(docs, example{English: e.English, renderedDoc: renderedDoc{Text: e.Sentence.String(), Sentence: e.Sentence}})
				}
				return writeIndented(out, docs)
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, e := range lang.Examples() {
				fmt.Fprintf(tw, "%s\t%s\n", e.English, e.Sentence)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the structured documents too")
	return cmd
}

var partitionNames = map[string]yaduha.Partition{
	"nouns":        yaduha.Nouns,
	"transitive":   yaduha.TransitiveVerbs,
	"intransitive": yaduha.IntransitiveVerbs,
}

func vocabCmd(opts *options) *cobra.Command {
	var partitions []string
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "List the vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := opts.language()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range partitions {
				p, ok := partitionNames[name]
				if !ok {
					return fmt.Errorf("unknown partition %q (nouns, transitive, intransitive)", name)
				}
				fmt.Fprintf(tw, "# %s\n", p)
				for _, e := range lang.Lexicon().Entries(p) {
					if e.Class != "" {
						fmt.Fprintf(tw, "%s\t%s\t%s\n", e.English, e.Target, e.Class)
						continue
					}
					fmt.Fprintf(tw, "%s\t%s\n", e.English, e.Target)
				}
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringSliceVar(&partitions, "partition", []string{"nouns", "transitive", "intransitive"},
		"partitions to list")
	return cmd
}

func schemaCmd(opts *options) *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of a sentence document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := opts.language()
			if err != nil {
				return err
			}
			schema := lang.Schema()
			if list {
				schema = yaduha.ListSchema(schema)
			}
			return writeIndented(cmd.OutOrStdout(), schema)
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, `wrap in the {"sentences": [...]} envelope`)
	return cmd
}

func inflectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inflect <lemma>",
		Short: "Print every form of a verb",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := opts.language()
			if err != nil {
				return err
			}
			table, err := lang.Inflect(args[0])
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, key := range table.Keys {
				fmt.Fprintf(tw, "%s\t%s\n", key, table.Cells[key])
			}
			return tw.Flush()
		},
	}
}

func languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the registered grammars",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(languages.Names(), "\n"))
		},
	}
}

func lemmatizeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lemmatize <text>...",
		Short: "Find the lemma and features of every verb form in a text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := opts.language()
			if err != nil {
				return err
			}
			lem, err := languages.Lemmatizer(lang.Name())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, res := range lem.LemmatizeText(strings.Join(args, " ")) {
				if len(res.Analyses) == 0 {
					fmt.Fprintf(tw, "%s\t-\n", res.Token)
					continue
				}
				for _, a := range res.Analyses {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", res.Token, a.Lemma, a.Key)
				}
			}
			return tw.Flush()
		},
	}
}
