package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkarson1997/karatay-ders-program/internal/bootstrap"
	exportdto "github.com/mkarson1997/karatay-ders-program/internal/modules/export/dto"
	scheduleinadapter "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/adapter/in"
	scheduledto "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/dto"
	"github.com/mkarson1997/karatay-ders-program/internal/platform/config"
	"github.com/mkarson1997/karatay-ders-program/internal/ui/forms"
)

// errReported marks failures whose details were already printed.
var errReported = errors.New("dışa aktarma tamamlanamadı")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "dersprog",
		Short:         "Haftalık ders programı oluşturucu",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ./dersprog.yaml)")

	root.AddCommand(newCoursesCmd(&cfgPath))
	root.AddCommand(newPreviewCmd(&cfgPath))
	root.AddCommand(newExportCmd(&cfgPath))
	root.AddCommand(newInspectCmd(&cfgPath))
	root.AddCommand(newHistoryCmd(&cfgPath))
	root.AddCommand(newPlanCmd(&cfgPath))
	root.AddCommand(newTUICmd(&cfgPath))
	return root
}

func loadApp(cfgPath string) (*bootstrap.App, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

// selectionFlags are shared by every command that resolves a schedule.
type selectionFlags struct {
	mode    string
	plan    string
	courses []string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mode, "mode", "", "program mode: y1|y2|mix (default y1, or the plan's mode)")
	cmd.Flags().StringVar(&f.plan, "plan", "", "plan file written by `dersprog plan`")
	cmd.Flags().StringArrayVar(&f.courses, "course", nil, "course as program:course[=group], repeatable")
}

func newTUICmd(cfgPath *string) *cobra.Command {
	var mode, student string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			app, err := bootstrap.NewQuiet(cfg)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app, mode, student)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "y1", "initial mode: y1|y2|mix")
	cmd.Flags().StringVar(&student, "student", "", "student name printed on exports")
	return cmd
}

func newCoursesCmd(cfgPath *string) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List the courses visible in a mode",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*cfgPath)
			if err != nil {
				return err
			}
			catalog, err := app.ScheduleCLI.ListCourses(context.Background(), mode)
			if err != nil {
				return err
			}
			printCatalog(cmd.OutOrStdout(), catalog)
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "y1", "program mode: y1|y2|mix")
	return cmd
}

func printCatalog(w io.Writer, catalog scheduledto.CatalogOutput) {
	_, _ = fmt.Fprintf(w, "%s • %s\n", catalog.ModeTitle, catalog.Term)
	for _, p := range catalog.Programs {
		_, _ = fmt.Fprintf(w, "\n%s\n", p.Name)
		for _, c := range p.Courses {
			labels := make([]string, 0, len(c.Groups))
			for _, g := range c.Groups {
				labels = append(labels, g.Label)
			}
			_, _ = fmt.Fprintf(w, "  %s\t%s\t%s [%s]\n", c.ID, c.Name, c.GroupHint, strings.Join(labels, ", "))
		}
	}
}

func newPreviewCmd(cfgPath *string) *cobra.Command {
	var sel selectionFlags
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Resolve conflicts and print the weekly table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*cfgPath)
			if err != nil {
				return err
			}
			out, err := app.ScheduleCLI.Preview(context.Background(), sel.mode, sel.plan, sel.courses)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), scheduleinadapter.RenderPreview(out))
			return nil
		},
	}
	sel.register(cmd)
	return cmd
}

func newExportCmd(cfgPath *string) *cobra.Command {
	var sel selectionFlags
	var format, student, outDir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the resolved schedule as pdf, xlsx, ics or md",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*cfgPath)
			if err != nil {
				return err
			}
			ctx := context.Background()
			input, err := app.ScheduleCLI.Selection(ctx, sel.mode, sel.plan, sel.courses)
			if err != nil {
				return err
			}
			if student == "" && sel.plan != "" {
				plan, err := app.ScheduleCLI.LoadPlan(ctx, sel.plan)
				if err != nil {
					return err
				}
				student = plan.Student
			}

			out, err := app.ExportCLI.Export(ctx, format, input.Mode, student, outDir, toExportChoices(input.Selections))
			for _, line := range out.Warnings {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			if err != nil {
				if len(out.Failure) > 0 {
					for _, line := range out.Failure {
						_, _ = fmt.Fprintln(cmd.ErrOrStderr(), line)
					}
					return errReported
				}
				if len(out.Warnings) > 0 {
					return errReported
				}
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "kaydedildi: %s (%s, %d sayfa, %d bayt)\n", out.Path, out.Format, out.Pages, out.Bytes)
			return nil
		},
	}
	sel.register(cmd)
	cmd.Flags().StringVar(&format, "format", "pdf", "output format: pdf|xlsx|ics|md")
	cmd.Flags().StringVar(&student, "student", "", "student name (adds a line and a file suffix)")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default from config)")
	return cmd
}

func toExportChoices(in []scheduledto.CourseChoice) []exportdto.CourseChoice {
	out := make([]exportdto.CourseChoice, 0, len(in))
	for _, c := range in {
		out = append(out, exportdto.CourseChoice{CourseID: c.CourseID, Group: c.Group})
	}
	return out
}

func newInspectCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.pdf|file.md>",
		Short: "Read back the text of an exported PDF or Markdown file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*cfgPath)
			if err != nil {
				return err
			}
			out, err := app.ExportCLI.Inspect(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d sayfa\n", out.Path, out.Pages)
			for _, line := range out.Lines {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

func newHistoryCmd(cfgPath *string) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded exports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*cfgPath)
			if err != nil {
				return err
			}
			entries, err := app.ExportCLI.History(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "kayıt yok")
				return nil
			}
			for _, e := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d ders\t%d sayfa\t%s\n", e.CreatedAt, e.Format, e.Mode, e.Courses, e.Pages, e.Path)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries")
	return cmd
}

func newPlanCmd(cfgPath *string) *cobra.Command {
	var out, mode string
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a plan file interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*cfgPath)
			if err != nil {
				return err
			}
			ctx := context.Background()
			answers, err := forms.RunPlanForm(ctx, app.ScheduleCLI, mode)
			if err != nil {
				return err
			}
			plan, err := app.ScheduleCLI.SavePlan(ctx, out, answers.Mode, answers.Student, answers.Selections)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "plan kaydedildi: %s (%d ders)\n", plan.Path, len(plan.Selections))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "plan.yaml", "plan file to write")
	cmd.Flags().StringVar(&mode, "mode", "", "preselected mode: y1|y2|mix")
	return cmd
}
