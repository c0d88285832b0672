package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/amonks/focusstudio/internal/ui"
	"github.com/amonks/focusstudio/template"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:     "template",
	Short:   "Manage board templates",
	Aliases: []string{"tpl"},
}

// template list
var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplateList,
}

var templateListJSON bool

// template apply
var templateApplyCmd = &cobra.Command{
	Use:   "apply <id-or-name>",
	Short: "Replace the board with a template's tasks",
	Long: `Replace the board with a template's tasks.

Applied tasks get fresh ids and timestamps; the template itself is
never consumed or modified. The current task list is replaced
entirely.`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplateApply,
}

// template export
var templateExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the current board as a template JSON document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTemplateExport,
}

var templateExportName string

// template import
var templateImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a template JSON document (use '-' or no file for stdin)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTemplateImport,
}

var templateImportApply bool

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.AddCommand(templateListCmd, templateApplyCmd, templateExportCmd, templateImportCmd)

	templateListCmd.Flags().BoolVar(&templateListJSON, "json", false, "Output as JSON")
	templateExportCmd.Flags().StringVar(&templateExportName, "name", "My Focus Template", "Name recorded in the export")
	templateImportCmd.Flags().BoolVar(&templateImportApply, "apply", false, "Apply the imported template immediately")
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	store, err := openTemplateStore()
	if err != nil {
		return err
	}

	templates := store.Templates()
	if templateListJSON {
		return encodeJSONToStdout(templates)
	}

	if len(templates) == 0 {
		fmt.Println("No templates found.")
		return nil
	}

	builder := ui.NewTableBuilder([]string{"ID", "NAME", "TASKS"}, len(templates))
	for _, tpl := range templates {
		builder.AddRow([]string{tpl.ID, ui.TruncateTableCell(tpl.Name), fmt.Sprintf("%d", len(tpl.Tasks))})
	}
	fmt.Print(builder.String())
	return nil
}

func runTemplateApply(cmd *cobra.Command, args []string) error {
	templates, err := openTemplateStore()
	if err != nil {
		return err
	}
	tasks, err := openTaskStore()
	if err != nil {
		return err
	}

	tpl, ok := templates.Find(args[0])
	if !ok {
		return fmt.Errorf("no template matching %q", args[0])
	}

	tasks.ReplaceAll(tpl.Materialize(time.Now()))
	fmt.Printf("Applied %q: %d tasks\n", tpl.Name, len(tpl.Tasks))
	return nil
}

func runTemplateExport(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}

	data, err := template.Export(templateExportName, store.Tasks())
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(args[0], append(data, '\n'), 0o644); err != nil {
		return err
	}
	fmt.Printf("Exported %d tasks to %s\n", store.Len(), args[0])
	return nil
}

func runTemplateImport(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return err
	}

	tpl, err := template.ParseDocument(data)
	if err != nil {
		return err
	}

	templates, err := openTemplateStore()
	if err != nil {
		return err
	}
	templates.Add(tpl)
	fmt.Printf("Imported %q as %s\n", tpl.Name, tpl.ID)

	if templateImportApply {
		tasks, err := openTaskStore()
		if err != nil {
			return err
		}
		tasks.ReplaceAll(tpl.Materialize(time.Now()))
		fmt.Printf("Applied %q: %d tasks\n", tpl.Name, len(tpl.Tasks))
	}
	return nil
}
