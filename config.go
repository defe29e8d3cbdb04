package fixtura

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leeward-labs/fixtura/log"
	"github.com/leeward-labs/fixtura/oracle"
)

// Model names the typed-schema bridge a --schema file is interpreted
// through, per SPEC_FULL.md §6's "Typed-schema bridge".
const (
	ModelJSONSchema = "json-schema"
	ModelYAMLHints  = "yaml-hints"
)

// Flags holds CLI flag names for fixtura configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	In     string
	Out    string
	Schema string
	Model  string
}

// Config holds CLI flag values for fixtura's spec-creation CLI.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.BuildOracle] and [Config.BuildLogger]
// to turn flag values into the pieces [CreateSpec] needs, mirroring the
// teacher's Flags/Config/RegisterFlags/RegisterCompletions/NewGenerator
// shape with a constructor pair suited to fixtura's two-input (records,
// oracle) pipeline instead of one.
type Config struct {
	Flags  Flags
	Log    *log.Config
	In     string
	Out    string
	Schema string
	Model  string
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		In:     "in",
		Out:    "out",
		Schema: "schema",
		Model:  "model",
	}

	return &Config{Flags: f, Log: log.NewConfig()}
}

// RegisterFlags adds fixtura's CLI flags, including the embedded logging
// flags, to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.In, c.Flags.In, "-",
		"input file of newline- or array-delimited JSON records (- for stdin)")
	flags.StringVarP(&c.Out, c.Flags.Out, "o", "-",
		"output spec document path (- for stdout)")
	flags.StringVar(&c.Schema, c.Flags.Schema, "",
		"optional typed-schema file for the dynamic-key oracle")
	flags.StringVar(&c.Model, c.Flags.Model, ModelJSONSchema,
		fmt.Sprintf("typed-schema model, one of: %s, %s", ModelJSONSchema, ModelYAMLHints))

	c.Log.RegisterFlags(flags)
}

// RegisterCompletions registers shell completions for fixtura's flags on
// cmd, including the embedded logging completions.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Model,
		cobra.FixedCompletions([]string{ModelJSONSchema, ModelYAMLHints}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Model, err)
	}

	return c.Log.RegisterCompletions(cmd)
}

// BuildOracle loads the dynamic-key oracle named by c.Schema/c.Model, or
// [oracle.Default] when no schema file is configured.
func (c *Config) BuildOracle() (oracle.Oracle, error) {
	if c.Schema == "" {
		return oracle.Default(), nil
	}

	data, err := os.ReadFile(c.Schema)
	if err != nil {
		return nil, fmt.Errorf("reading schema %q: %w", c.Schema, err)
	}

	switch c.Model {
	case ModelYAMLHints:
		return oracle.FromYAMLTypeHints(data)
	case ModelJSONSchema, "":
		var schema jsonschema.Schema
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing json schema %q: %w", c.Schema, err)
		}

		return oracle.FromJSONSchema(&schema), nil
	default:
		return nil, fmt.Errorf("unknown schema model %q", c.Model)
	}
}

// BuildLogger builds the [*slog.Logger] fixtura.CreateSpec logs phase
// boundaries to, writing to w at the level/format c.Log carries.
func (c *Config) BuildLogger(w io.Writer) (*slog.Logger, error) {
	handler, err := c.Log.NewHandler(w)
	if err != nil {
		return nil, err
	}

	return slog.New(handler), nil
}
