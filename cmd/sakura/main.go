package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"sakura/internal/anim"
	"sakura/internal/config"
	"sakura/internal/core"
	"sakura/internal/ledger"
	"sakura/internal/log"
	"sakura/internal/screens"
)

// previewInterval is how often the preview moves to the next page.
const previewInterval = 5 * time.Second

func main() {
	// Load configuration (.env is read by config.Load)
	cfg := config.Load()

	logger := cfg.Logger().WithComponent(log.ComponentApp)
	log.SetDefault(logger)

	// Validate configuration
	cfgLogger := logger.WithComponent(log.ComponentConfig)
	if err := cfg.Validate(); err != nil {
		cfgLogger.Error("Configuration validation failed",
			log.FieldErrorType, log.ErrorTypeConfiguration,
			log.FieldError, err)
		os.Exit(1)
	}
	cfgLogger.Info("Configuration loaded",
		"log_format", cfg.LogFormat,
		"viewport", fmt.Sprintf("%dx%d", cfg.ViewportWidth, cfg.ViewportHeight),
		log.FieldPetals, cfg.PetalCap,
		"counter_steps", cfg.CounterSteps)

	logger.Info("Starting sakura preview",
		log.FieldOperation, log.OpStartup,
		"log_level", cfg.LogLevel,
		"savings_goal", cfg.SavingsGoal)

	app, err := screens.NewDemoApp(screens.Options{
		Logger:      logger,
		SavingsGoal: cfg.Goal(),
	})
	if err != nil {
		logger.Error("Failed to load demo data", log.FieldError, err)
		os.Exit(1)
	}
	logOverview(logger, app)

	engine, err := anim.NewEngine(anim.FromAppConfig(cfg), nil)
	if err != nil {
		logger.Error("Failed to build decorations", log.FieldError, err)
		os.Exit(1)
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(log.NewContext(context.Background(), logger))
	defer cancel()

	release, err := engine.Mount(ctx)
	if err != nil {
		logger.Error("Failed to mount decorations", log.FieldError, err)
		os.Exit(1)
	}
	defer release()

	dash, err := app.Dashboard()
	if err != nil {
		logger.Error("Failed to derive dashboard", log.FieldError, err)
		os.Exit(1)
	}
	for name, target := range map[string]decimal.Decimal{
		"income":   dash.Income,
		"expenses": dash.Expenses,
		"savings":  dash.Savings,
	} {
		if _, err := engine.Count(target, func(v decimal.Decimal) {
			if v.Equal(target) {
				logger.Debug("Counter settled", "counter", name, log.FieldAmount, core.FormatAmount(v))
			}
		}); err != nil {
			logger.Warn("Counter not started", "counter", name, log.FieldError, err)
		}
	}

	// Walk through the pages so the mascot reacts
	go func() {
		ticker := time.NewTicker(previewInterval)
		defer ticker.Stop()
		pages := screens.Pages()
		for i := 0; ; i++ {
			page := pages[i%len(pages)]
			engine.Mascot.OnPageChanged(page)
			state := engine.Mascot.State()
			logger.Info("Page shown",
				log.FieldPage, page,
				log.FieldExpression, string(state.Expression),
				"face", state.Expression.Face(),
				log.FieldPetals, engine.Petals.Len())

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("Context cancelled")
	}

	logger.Info("Shutting down sakura preview...", log.FieldOperation, log.OpShutdown)
	cancel()
	release()
	logger.Info("Sakura preview shutdown complete")
}

func logOverview(logger *log.Logger, app *screens.App) {
	dash, err := app.Dashboard()
	if err != nil {
		logger.Error("Failed to derive dashboard", log.FieldError, err)
		return
	}
	fields := []any{
		"income", core.FormatAmount(dash.Income),
		"expenses", core.FormatAmount(dash.Expenses),
		"savings", core.FormatAmount(dash.Savings),
		"goal", core.FormatAmount(dash.Goal),
	}
	if dash.SavingsRate.Valid {
		fields = append(fields, "savings_rate", dash.SavingsRate.Decimal.StringFixed(1))
	}
	if dash.GoalProgress.Valid {
		fields = append(fields, "goal_progress", dash.GoalProgress.Decimal.StringFixed(1))
	}
	logger.Info("Dashboard", fields...)

	budgets, err := app.Expenses.Budgets()
	if err != nil {
		logger.Error("Failed to derive budgets", log.FieldError, err)
	}
	for _, b := range budgets {
		logger.Info("Budget",
			log.FieldCategory, string(b.Category),
			"spent", core.FormatAmount(b.Spent),
			"limit", core.FormatAmount(b.Limit),
			log.FieldPercent, b.Percent.StringFixed(1),
			log.FieldStatus, string(b.Status))
	}

	portfolio, err := app.Investments.Portfolio()
	switch {
	case errors.Is(err, ledger.ErrDivisionByZero):
		logger.Info("Portfolio empty")
	case err != nil:
		logger.Error("Failed to derive portfolio", log.FieldError, err)
	default:
		logger.Info("Portfolio",
			"invested", core.FormatAmount(portfolio.Invested),
			"current", core.FormatAmount(portfolio.Current),
			"profit_loss", core.FormatAmount(portfolio.Absolute),
			log.FieldPercent, portfolio.Percent.StringFixed(2))
	}

	charts, err := app.Charts()
	if err != nil {
		logger.Error("Failed to derive charts", log.FieldError, err)
		return
	}
	for _, s := range charts.Spending {
		logger.Info("Spending share",
			log.FieldCategory, s.Label,
			log.FieldAmount, core.FormatAmount(s.Amount),
			log.FieldPercent, s.Percent.StringFixed(1))
	}
}
