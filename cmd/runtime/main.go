package main

import (
	"errors"
	"io"
	"net/http"
	"os"

	"rgehrsitz/reflex/internal/actor"
	"rgehrsitz/reflex/internal/config"
	"rgehrsitz/reflex/pkg/metrics"
	"rgehrsitz/reflex/pkg/rules"
	"rgehrsitz/reflex/pkg/runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const criticalMessage = "Critical health! Drinking a healing potion."

func main() {
	cfg := config.Default()
	if len(os.Args) > 1 {
		loaded, err := config.Load(os.Args[1])
		if err != nil {
			log.Error().Err(err).Msg("Error loading config")
			os.Exit(1)
		}
		cfg = loaded
	}

	zerolog.SetGlobalLevel(cfg.Level())
	if cfg.Console {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	reg := prometheus.NewRegistry()
	if cfg.Metrics.Enabled {
		go serveMetrics(cfg.Metrics.Address, reg)
	}

	if err := run(cfg, os.Stdout, reg); err != nil {
		log.Error().Err(err).Msg("Simulation failed")
		os.Exit(1)
	}

	log.Info().Msg("Simulation completed successfully.")
}

// buildRuleSet puts the critical drink rule ahead of the defaults so it wins
// whenever both match.
func buildRuleSet(cfg config.Config) rules.RuleSet {
	kind := rules.ItemKind(cfg.Rules.HealingKind)
	set := rules.RuleSet{
		rules.ResourceLow{
			RuleName:  "critical_drink_healing",
			Operator:  rules.OperatorLessThanOrEqual,
			Threshold: cfg.Rules.CriticalThreshold,
			Kind:      kind,
			Message:   criticalMessage,
			Use:       actor.DrinkAction(kind),
		},
	}
	return append(set, cfg.Registry().CreateDefault()...)
}

func run(cfg config.Config, out io.Writer, reg prometheus.Registerer) error {
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return err
	}

	hero := actor.NewHero(cfg.Simulation.Hero, cfg.Simulation.MaxHealth, cfg.Inventory())
	hero.HealingKind = rules.ItemKind(cfg.Rules.HealingKind)

	evaluator := runtime.NewEvaluator(buildRuleSet(cfg), runtime.WriterSink{W: out},
		runtime.WithObserver(collector),
		runtime.WithLogger(log.Logger),
	)

	for tick := 1; tick <= cfg.Simulation.Ticks; tick++ {
		hero.Damage(cfg.Simulation.Damage)
		outcome, err := evaluator.Evaluate(hero)
		if err != nil {
			var actionErr *runtime.ActionExecutionError
			if errors.As(err, &actionErr) {
				log.Error().Err(err).Int("tick", tick).Msg("Skipping tick after failed action")
				continue
			}
			return err
		}
		log.Debug().
			Int("tick", tick).
			Int("hp", hero.Health()).
			Bool("matched", outcome.Matched).
			Str("rule", outcome.Rule).
			Msg("Tick evaluated")
		if hero.Health() == 0 {
			log.Info().Int("tick", tick).Str("hero", hero.Name).Msg("Hero has fallen")
			break
		}
	}
	return nil
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	log.Info().Str("address", addr).Msg("Serving metrics")
	if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("Metrics server stopped")
	}
}
