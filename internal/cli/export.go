package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format    string
		outputDir string
		toStdout  bool
		list      bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the working palette",
		Long: `Export the working palette. The default css format writes CSS custom
properties (--color1, --color2, ...) in a :root block to palette.css.`,
		Example: `  swatch export
  swatch export --format json --output-dir ./theme
  swatch export --stdout > colours.css`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if list {
				table := NewTable([]string{"Format", "File", "Description"})
				for _, name := range a.exporters.List() {
					e, _ := a.exporters.Get(name)
					table.AddRow([]string{e.Name(), e.Filename(), e.Description()})
				}
				fmt.Fprint(out, table.Render())
				return nil
			}

			if !cmd.Flags().Changed("format") {
				format = a.cfg.ExportFormat
			}
			e, ok := a.exporters.Get(strings.ToLower(format))
			if !ok {
				return fmt.Errorf("unknown export format %q (available: %s)", format, strings.Join(a.exporters.List(), ", "))
			}

			p, err := a.store.LoadSession()
			if err != nil {
				return err
			}
			if len(p) == 0 {
				a.warn(cmd.ErrOrStderr(), "Exporting an empty palette")
			}

			if toStdout {
				content, err := e.Export(p)
				if err != nil {
					return fmt.Errorf("%s export failed: %w", e.Name(), err)
				}
				_, err = out.Write(content)
				return err
			}

			if !cmd.Flags().Changed("output-dir") {
				outputDir = a.cfg.ExportDir
			}
			path, err := export.Write(outputDir, e, p)
			if err != nil {
				return err
			}
			a.logger.Debug("exported palette", "format", e.Name(), "mime", e.MIMEType(), "path", path)
			a.success(out, "Exported %d colours to %s", len(p), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "css", "export format (see --list)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "directory to write the export to")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "write the export to stdout instead of a file")
	cmd.Flags().BoolVar(&list, "list", false, "list available export formats")

	return cmd
}
