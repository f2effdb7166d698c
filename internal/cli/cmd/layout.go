package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/layoutcodec"
)

const demoDescription = "Demo layout"

var (
	demoSave       string
	demoFormat     string
	validateFormat string
	convertFrom    string
	convertTo      string
	convertOutput  string
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect and convert layout documents",
	Long: `Work with serialized layout state.

Layouts can be stored as XML (the default), YAML or JSON. The format of
an input file is taken from its extension, or sniffed from its content.`,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}

// layout demo
var layoutDemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build and print the demo layout",
	Long: `Build the demo IDE layout and print it as a tree.

With --format the serialized layout is printed instead. With --save the
layout is stored as a perspective.`,
	Args: cobra.NoArgs,
	RunE: runLayoutDemo,
}

func init() {
	layoutCmd.AddCommand(layoutDemoCmd)
	layoutDemoCmd.Flags().StringVar(&demoSave, "save", "", "save the layout as this perspective")
	layoutDemoCmd.Flags().StringVar(&demoFormat, "format", "", "print the layout as xml, yaml or json")
}

func runLayoutDemo(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if err := cli.BuildDemoLayout(app.Ctx(), app.Dock); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := printLayout(out, app, app.Dock.Snapshot(), demoFormat); err != nil {
		return err
	}

	if demoSave == "" {
		return nil
	}
	if err := app.OpenPerspectives(app.Ctx()); err != nil {
		return err
	}
	if _, err := app.Perspectives.SavePerspective(app.Ctx(), demoSave, demoDescription); err != nil {
		return err
	}
	if err := app.Persist(app.Ctx()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Saved perspective %s\n", demoSave)
	return nil
}

func printLayout(out io.Writer, app *cli.App, state *entity.LayoutState, format string) error {
	if format == "" {
		_, err := fmt.Fprintln(out, app.Theme.RenderLayout(state))
		return err
	}
	codec, err := app.LayoutCodec(format)
	if err != nil {
		return err
	}
	data, err := codec.Encode(state)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// layout validate <file>
var layoutValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check that a layout document is well formed",
	Long: `Decode a layout document and check its structure.

A valid layout references each widget at most once, has split nodes with
at least two children and one size per child, and has no empty areas.`,
	Args: cobra.ExactArgs(1),
	RunE: runLayoutValidate,
}

func init() {
	layoutCmd.AddCommand(layoutValidateCmd)
	layoutValidateCmd.Flags().StringVar(&validateFormat, "format", "", "input format (default: from extension or content)")
}

func runLayoutValidate(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	codec, err := inputCodec(app, args[0], data, validateFormat)
	if err != nil {
		return err
	}
	state, err := decodeValid(codec, data)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: valid %s layout, %d widgets, %d areas, %d floating\n",
		args[0], codec.Format(), len(state.Widgets), state.AreaCount(), len(state.Floating))
	return nil
}

// layout convert <file>
var layoutConvertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a layout document to another format",
	Long: `Re-encode a layout document as xml, yaml or json.

The result goes to standard output unless --output is given. The input
is validated before conversion.`,
	Args: cobra.ExactArgs(1),
	RunE: runLayoutConvert,
}

func init() {
	layoutCmd.AddCommand(layoutConvertCmd)
	layoutConvertCmd.Flags().StringVar(&convertFrom, "from", "", "input format (default: from extension or content)")
	layoutConvertCmd.Flags().StringVar(&convertTo, "to", "", "output format: xml, yaml or json")
	layoutConvertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "write to this file")
	_ = layoutConvertCmd.MarkFlagRequired("to")
}

func runLayoutConvert(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	from, err := inputCodec(app, args[0], data, convertFrom)
	if err != nil {
		return err
	}
	to, err := app.LayoutCodec(convertTo)
	if err != nil {
		return err
	}

	converted, err := layoutcodec.Convert(data, from, to)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if convertOutput == "" {
		_, err = cmd.OutOrStdout().Write(converted)
		return err
	}
	if err := os.WriteFile(convertOutput, converted, exportFileMode); err != nil {
		return fmt.Errorf("write %s: %w", convertOutput, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Converted %s (%s) to %s (%s)\n", args[0], from.Format(), convertOutput, to.Format())
	return nil
}

// inputCodec picks the codec for an input document: the explicit format,
// then the file extension, then the content.
func inputCodec(app *cli.App, path string, data []byte, format string) (port.LayoutCodec, error) {
	if format == "" {
		var ok bool
		if format, ok = layoutcodec.FormatFromPath(path); !ok {
			format = layoutcodec.Sniff(data)
		}
	}
	return app.LayoutCodec(format)
}

func decodeValid(codec port.LayoutCodec, data []byte) (*entity.LayoutState, error) {
	state, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}
	return state, nil
}
