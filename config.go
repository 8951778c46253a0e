package el2md

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for conversion configuration, allowing callers
// to customize flag names while keeping sensible defaults.
type Flags struct {
	Output          string
	Readme          string
	FrontMatter     string
	SymmetricQuotes string
	KeyNames        string
	Attribution     string
}

// Config holds CLI flag values for conversion configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewConverter] to create a
// [Converter]. The Output and Readme fields are consumed by the command
// layer, not the converter.
type Config struct {
	Flags           Flags
	Output          string
	KeyNames        string
	Readme          bool
	FrontMatter     bool
	SymmetricQuotes bool
	Attribution     bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Output:          "output",
		Readme:          "readme",
		FrontMatter:     "front-matter",
		SymmetricQuotes: "symmetric-quotes",
		KeyNames:        "key-names",
		Attribution:     "attribution",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds conversion flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "-",
		"output file path (- for stdout)")
	flags.BoolVar(&c.Readme, c.Flags.Readme, false,
		"write README.md next to each input file")
	flags.BoolVar(&c.FrontMatter, c.Flags.FrontMatter, false,
		"emit extracted metadata as a YAML front matter block")
	flags.BoolVar(&c.SymmetricQuotes, c.Flags.SymmetricQuotes, false,
		"treat `span` the same as the asymmetric `span' convention")
	flags.StringVar(&c.KeyNames, c.Flags.KeyNames, "RET,TAB",
		"comma-separated key names rendered as <kbd> tags")
	flags.BoolVar(&c.Attribution, c.Flags.Attribution, true,
		"append the horizontal rule and attribution trailer")
}

// RegisterCompletions registers shell completions for conversion flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	err := cmd.RegisterFlagCompletionFunc(c.Flags.KeyNames, noFileComp)
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.KeyNames, err)
	}

	return nil
}

// NewConverter creates a [Converter] using this [Config].
func (c *Config) NewConverter() (*Converter, error) {
	names, err := parseKeyNames(c.KeyNames)
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithKeyNames(names...),
		WithSymmetricQuotes(c.SymmetricQuotes),
		WithFrontMatter(c.FrontMatter),
		WithAttribution(c.Attribution),
	}

	return NewConverter(opts...), nil
}

// parseKeyNames parses a comma-separated list of key names. Empty elements
// are skipped; names containing whitespace or backticks cannot appear in a
// quoted span and are rejected.
func parseKeyNames(names string) ([]string, error) {
	var out []string

	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if strings.ContainsAny(name, " \t`") {
			return nil, fmt.Errorf("%w: invalid key name %q", ErrInvalidOption, name)
		}

		out = append(out, name)
	}

	return out, nil
}
