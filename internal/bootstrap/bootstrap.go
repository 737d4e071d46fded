package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	exportinadapter "github.com/mkarson1997/karatay-ders-program/internal/modules/export/adapter/in"
	exportoutadapter "github.com/mkarson1997/karatay-ders-program/internal/modules/export/adapter/out"
	exportout "github.com/mkarson1997/karatay-ders-program/internal/modules/export/port/out"
	exportservice "github.com/mkarson1997/karatay-ders-program/internal/modules/export/service"
	exportusecase "github.com/mkarson1997/karatay-ders-program/internal/modules/export/usecase"
	scheduleinadapter "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/adapter/in"
	scheduleoutadapter "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/adapter/out"
	scheduleout "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/port/out"
	scheduleservice "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/service"
	scheduleusecase "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/usecase"
	"github.com/mkarson1997/karatay-ders-program/internal/platform/clock"
	"github.com/mkarson1997/karatay-ders-program/internal/platform/config"
	"github.com/mkarson1997/karatay-ders-program/internal/platform/id"
	"github.com/mkarson1997/karatay-ders-program/internal/platform/logger"
	uiapp "github.com/mkarson1997/karatay-ders-program/internal/ui/app"
)

type App struct {
	Config      config.Config
	Log         *zap.Logger
	ScheduleCLI scheduleinadapter.CLIHandler
	ScheduleTUI scheduleinadapter.TUIHandler
	ExportCLI   exportinadapter.CLIHandler
	ExportTUI   exportinadapter.TUIHandler
}

func New(cfg config.Config) (*App, error) {
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	return assemble(cfg, log)
}

// NewQuiet wires the app without log output; the TUI owns the terminal.
func NewQuiet(cfg config.Config) (*App, error) {
	return assemble(cfg, zap.NewNop())
}

func assemble(cfg config.Config, log *zap.Logger) (*App, error) {
	var catalog scheduleout.CatalogSource
	if cfg.CatalogPlugin != "" {
		catalog = scheduleoutadapter.NewPluginCatalogSource(cfg.CatalogPlugin, cfg.CatalogPath)
	} else {
		catalog = scheduleoutadapter.NewFileCatalogSource(cfg.CatalogPath)
	}
	scheduleUC := scheduleusecase.NewInteractor(scheduleservice.NewScheduleService(
		log.Named("schedule"),
		catalog,
		scheduleoutadapter.NewYAMLPlanStore(),
	))

	history, err := exportoutadapter.NewSQLiteHistoryStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new export history: %w", err)
	}
	renderers := []exportout.Renderer{
		exportoutadapter.NewPDFRenderer(cfg.FontPath),
		exportoutadapter.NewXLSXRenderer(),
		exportoutadapter.NewICSRenderer(exportoutadapter.ICSSettings{
			TermStart: cfg.TermStart,
			TermWeeks: cfg.TermWeeks,
			Timezone:  cfg.Timezone,
		}),
		exportoutadapter.NewMarkdownRenderer(),
	}
	exportUC := exportusecase.NewInteractor(exportservice.NewExportService(
		log.Named("export"),
		clock.SystemClock{},
		id.UUID{},
		exportservice.Settings{
			Institution: cfg.Institution,
			Department:  cfg.Department,
			OutputDir:   cfg.OutputDir,
		},
		exportoutadapter.NewScheduleAdapter(scheduleUC),
		renderers,
		history,
		exportoutadapter.NewInspector(),
	))

	return &App{
		Config:      cfg,
		Log:         log,
		ScheduleCLI: scheduleinadapter.NewCLIHandler(scheduleUC),
		ScheduleTUI: scheduleinadapter.NewTUIHandler(scheduleUC),
		ExportCLI:   exportinadapter.NewCLIHandler(exportUC),
		ExportTUI:   exportinadapter.NewTUIHandler(exportUC),
	}, nil
}

func RunTUI(app *App, mode, student string) error {
	model := uiapp.NewModel(app.ScheduleTUI, app.ExportTUI, mode, student)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
