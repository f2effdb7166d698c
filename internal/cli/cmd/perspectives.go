package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/cli/model"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	exportFileMode   = 0o644
	exportDirMode    = 0o755
	exportExt        = ".xml"
	exportWriteLimit = 4
)

var (
	perspectivesJSON bool
	showRaw          bool
	importName       string
	importUnique     bool
)

var perspectivesCmd = &cobra.Command{
	Use:   "perspectives",
	Short: "Manage saved perspectives",
	Long: `View, load, save and manage layout perspectives.

A perspective is a named snapshot of the dock layout. Perspectives are
kept in the configured store (SQLite by default, or a <Perspectives> XML
bundle) and can be exported to and imported from standalone XML files.

Run without arguments to open the interactive perspective browser.`,
	RunE: runPerspectives,
}

func init() {
	rootCmd.AddCommand(perspectivesCmd)
}

func runPerspectives(_ *cobra.Command, _ []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	if cur := app.Perspectives.Current(); cur != "" {
		if err := app.Perspectives.LoadPerspective(app.Ctx(), cur); err != nil {
			logging.FromContext(app.Ctx()).Warn().Err(err).Msg("could not restore current perspective")
		}
	}
	if err := app.StartAutoSave(app.Ctx()); err != nil {
		return err
	}
	if err := app.WatchConfig(app.Ctx()); err != nil {
		logging.FromContext(app.Ctx()).Warn().Err(err).Msg("config hot reload disabled")
	}

	cfg := model.PerspectivesModelConfig{
		Perspectives:     app.Perspectives,
		Codec:            app.Dock.Codec(),
		Persist:          app.Persist,
		AutoSaveInterval: app.Config.Perspectives.AutoSaveInterval,
	}
	if app.Queue != nil {
		cfg.Drain = app.Queue.Drain
	}
	m := model.NewPerspectivesModel(app.Ctx(), app.Theme, cfg)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// perspectives list
var perspectivesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved perspectives",
	Long: `List all saved perspectives with their size and last modification.

The current perspective is marked with ●.`,
	Args: cobra.NoArgs,
	RunE: runPerspectivesList,
}

func init() {
	perspectivesCmd.AddCommand(perspectivesListCmd)
	perspectivesListCmd.Flags().BoolVar(&perspectivesJSON, "json", false, "output as JSON")
}

func runPerspectivesList(cmd *cobra.Command, _ []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	infos := app.Perspectives.List()
	if perspectivesJSON {
		return outputPerspectivesJSON(cmd.OutOrStdout(), infos)
	}
	return outputPerspectivesTable(cmd.OutOrStdout(), infos)
}

func outputPerspectivesJSON(out io.Writer, infos []entity.PerspectiveInfo) error {
	if infos == nil {
		infos = []entity.PerspectiveInfo{}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(infos)
}

func outputPerspectivesTable(out io.Writer, infos []entity.PerspectiveInfo) error {
	if len(infos) == 0 {
		_, err := fmt.Fprintln(out, "No saved perspectives found.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CUR\tNAME\tDESCRIPTION\tSIZE\tMODIFIED")
	for _, info := range infos {
		status := " "
		if info.IsCurrent {
			status = styles.IconCurrent
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			status,
			info.Name,
			info.Description,
			info.LayoutSize,
			styles.RelativeTime(info.Modified),
		)
	}
	return w.Flush()
}

// perspectives show <name>
var perspectivesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the layout stored in a perspective",
	Long: `Print a perspective's metadata and its layout as a tree.

Use --raw to print the stored layout document instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runPerspectivesShow,
}

func init() {
	perspectivesCmd.AddCommand(perspectivesShowCmd)
	perspectivesShowCmd.Flags().BoolVar(&showRaw, "raw", false, "print the stored layout document")
}

func runPerspectivesShow(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	p, ok := app.Perspectives.Perspective(args[0])
	if !ok {
		return fmt.Errorf("%w: %q", entity.ErrPerspectiveNotFound, args[0])
	}

	out := cmd.OutOrStdout()
	if showRaw {
		_, err := out.Write(p.Layout)
		return err
	}

	state, err := app.Dock.Codec().Decode(p.Layout)
	if err != nil {
		return fmt.Errorf("decode perspective %q: %w", p.Name, err)
	}
	return renderPerspective(out, app.Theme, p, state, p.Name == app.Perspectives.Current())
}

func renderPerspective(out io.Writer, t *styles.Theme, p *entity.Perspective, state *entity.LayoutState, current bool) error {
	var b strings.Builder
	b.WriteString(t.Title.Render(p.Name))
	if current {
		b.WriteString(" " + t.CurrentBadge())
	}
	b.WriteString("\n")
	if p.Description != "" {
		b.WriteString(t.Subtle.Render(p.Description) + "\n")
	}
	fmt.Fprintf(&b, "%s %s  %s %s  %s\n\n",
		t.Subtle.Render("created"), styles.RelativeTime(p.Created),
		t.Subtle.Render("modified"), styles.RelativeTime(p.Modified),
		t.SizeBadge(len(p.Layout)))
	b.WriteString(t.RenderLayout(state))
	_, err := io.WriteString(out, strings.TrimRight(b.String(), "\n")+"\n")
	return err
}

// perspectives use <name>
var perspectivesUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Make a perspective current",
	Long: `Restore a perspective into the demo layout and mark it current.

The layout is validated by restoring it; the current marker is only
changed when the restore succeeds.`,
	Args: cobra.ExactArgs(1),
	RunE: runPerspectivesUse,
}

func init() {
	perspectivesCmd.AddCommand(perspectivesUseCmd)
}

func runPerspectivesUse(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	if err := app.Perspectives.LoadPerspective(app.Ctx(), args[0]); err != nil {
		return err
	}
	if err := app.Persist(app.Ctx()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Current perspective: %s\n", args[0])
	return nil
}

// perspectives export <name> <file>
var perspectivesExportCmd = &cobra.Command{
	Use:   "export <name> <file>",
	Short: "Export a perspective to an XML file",
	Long: `Write one perspective as a standalone <Perspective> document.

Use - as the file to write to standard output.`,
	Args: cobra.ExactArgs(2),
	RunE: runPerspectivesExport,
}

func init() {
	perspectivesCmd.AddCommand(perspectivesExportCmd)
}

func runPerspectivesExport(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	name, path := args[0], args[1]

	if path == "-" {
		return app.Perspectives.ExportPerspective(app.Ctx(), name, cmd.OutOrStdout())
	}

	var buf bytes.Buffer
	if err := app.Perspectives.ExportPerspective(app.Ctx(), name, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), exportFileMode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", name, path)
	return nil
}

// perspectives export-all <dir>
var perspectivesExportAllCmd = &cobra.Command{
	Use:   "export-all <dir>",
	Short: "Export every perspective to a directory",
	Long: `Write each perspective as <dir>/<name>.xml.

Existing files with the same names are overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: runPerspectivesExportAll,
}

func init() {
	perspectivesCmd.AddCommand(perspectivesExportAllCmd)
}

func runPerspectivesExportAll(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	paths, err := exportAll(app, args[0])
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}

// exportAll encodes on the calling goroutine and writes the files in parallel.
func exportAll(app *cli.App, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, exportDirMode); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	names := app.Perspectives.Names()
	docs := make([][]byte, len(names))
	paths := make([]string, len(names))
	for i, name := range names {
		var buf bytes.Buffer
		if err := app.Perspectives.ExportPerspective(app.Ctx(), name, &buf); err != nil {
			return nil, err
		}
		docs[i] = buf.Bytes()
		paths[i] = filepath.Join(dir, exportFileName(name))
	}

	g, _ := errgroup.WithContext(app.Ctx())
	g.SetLimit(exportWriteLimit)
	for i := range paths {
		g.Go(func() error {
			if err := os.WriteFile(paths[i], docs[i], exportFileMode); err != nil {
				return fmt.Errorf("write %s: %w", paths[i], err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logging.FromContext(app.Ctx()).Info().Int("count", len(paths)).Str("dir", dir).Msg("perspectives exported")
	return paths, nil
}

// exportFileName keeps perspective names usable as file names.
func exportFileName(name string) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
	return clean + exportExt
}

// perspectives import <file>
var perspectivesImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a perspective from an XML file",
	Long: `Read a standalone <Perspective> document into the store.

The perspective keeps the name it carries unless --name is given.
Existing perspectives are never overwritten: the import fails on a name
conflict, or picks the first free NAME_N with --unique.`,
	Args: cobra.ExactArgs(1),
	RunE: runPerspectivesImport,
}

func init() {
	perspectivesCmd.AddCommand(perspectivesImportCmd)
	perspectivesImportCmd.Flags().StringVar(&importName, "name", "", "store under this name")
	perspectivesImportCmd.Flags().BoolVar(&importUnique, "unique", false, "pick a free name on conflict")
}

func runPerspectivesImport(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	p, err := importPerspective(app, data, importName, importUnique)
	if err != nil {
		return err
	}
	if err := app.Persist(app.Ctx()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", p.Name)
	return nil
}

func importPerspective(app *cli.App, data []byte, name string, unique bool) (*entity.Perspective, error) {
	if unique {
		if name == "" {
			doc, err := app.Codec.DecodePerspective(bytes.NewReader(data))
			if err != nil {
				return nil, fmt.Errorf("failed to import perspective: %w", err)
			}
			name = doc.Name
		}
		if name != "" {
			name = app.Perspectives.UniqueName(name)
		}
	}
	return app.Perspectives.ImportPerspective(app.Ctx(), bytes.NewReader(data), name)
}

// perspectives rename <old> <new>
var perspectivesRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a perspective",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		if err := app.Perspectives.RenamePerspective(app.Ctx(), args[0], args[1]); err != nil {
			return err
		}
		if err := app.Persist(app.Ctx()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", args[0], args[1])
		return nil
	},
}

// perspectives delete <name>
var perspectivesDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a perspective",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		if err := app.Perspectives.RemovePerspective(app.Ctx(), args[0]); err != nil {
			return err
		}
		if err := app.Persist(app.Ctx()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	perspectivesCmd.AddCommand(perspectivesRenameCmd)
	perspectivesCmd.AddCommand(perspectivesDeleteCmd)
}
