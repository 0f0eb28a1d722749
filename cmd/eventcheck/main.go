package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"club-events/internal/catalog"
	"club-events/internal/classify"
	"club-events/internal/clock"
	"club-events/internal/config"
	"club-events/internal/eligibility"
	"club-events/internal/logger"
	"club-events/internal/models"
	"club-events/internal/search"
)

func main() {
	log, err := logger.NewLogger("eventcheck")
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		log.Info("CONFIG", "Loaded environment variables from .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("CONFIG", fmt.Sprintf("Failed to load configuration: %v", err))
	}
	log.LogConfig(fmt.Sprintf("feedback window %d day(s), grace %s, timezone %s",
		cfg.Rules.FeedbackWindowDays, cfg.Rules.OngoingGrace, cfg.Rules.Timezone))

	rules, err := cfg.ClassifierRules()
	if err != nil {
		log.Fatal("CONFIG", fmt.Sprintf("Invalid classification rules: %v", err))
	}

	classifier := classify.NewClassifier(rules)
	validator := eligibility.NewValidator(classifier)
	engine := search.NewEngine(classifier, cfg.Listing.SkipMalformed)

	events, err := catalog.Load(cfg.Events.File, rules.Location)
	if err != nil {
		log.Fatal("CATALOG", fmt.Sprintf("Failed to load events: %v", err))
	}
	log.LogCatalog("load", fmt.Sprintf("%d event(s) from %s", len(events), cfg.Events.File))

	now := clock.System().Now()

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	switch args[0] {
	case "list":
		err = runList(engine, cfg, events, args[1:], now)
	case "search":
		err = runSearch(engine, log, events, args[1:], now)
	case "register":
		err = runRegister(engine, validator, log, events, args[1:], now)
	case "feedback":
		err = runFeedback(engine, validator, log, events, args[1:], now)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		var invalid *models.InvalidQueryError
		if errors.As(err, &invalid) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		log.Fatal("APP", err.Error())
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage:
  eventcheck list [upcoming|today|completed|all] [category]
  eventcheck search <query>
  eventcheck register <event name>
  eventcheck feedback <rating 1-5> <event name>
`)
}

func runList(engine *search.Engine, cfg *config.Config, events []models.Event, args []string, now time.Time) error {
	f := search.Filter{Type: search.FilterAll, Limit: cfg.Listing.DefaultLimit}
	if len(args) > 0 {
		f.Type = search.FilterType(strings.ToUpper(args[0]))
	}
	if len(args) > 1 {
		f.Category = args[1]
	}

	results, err := engine.List(events, f, now)
	if err != nil {
		return err
	}
	printResults(results)
	return nil
}

func runSearch(engine *search.Engine, log *logger.Logger, events []models.Event, args []string, now time.Time) error {
	query := strings.Join(args, " ")
	if strings.TrimSpace(query) == "" {
		return &models.InvalidQueryError{Field: "query", Reason: "must not be empty"}
	}

	results, err := engine.Search(events, query, now)
	if err != nil {
		return err
	}
	log.LogSearch(query, len(results))
	printResults(results)
	return nil
}

func runRegister(engine *search.Engine, validator *eligibility.Validator, log *logger.Logger, events []models.Event, args []string, now time.Time) error {
	ev, err := resolveTarget(engine, events, strings.Join(args, " "), now)
	if err != nil {
		return err
	}

	decision, err := validator.ValidateRegistration(eligibility.RegistrationRequest{Event: ev}, now)
	if err != nil {
		return err
	}

	if decision.Allowed {
		fmt.Printf("Registration open for %q (%s). %d slot(s) left.\n",
			ev.Name, decision.Classification.TimeDescription, ev.AvailableSlots)
	} else {
		fmt.Println(decision.Message)
	}
	log.LogEligibility("register", eventID(ev), outcome(decision))
	return nil
}

func runFeedback(engine *search.Engine, validator *eligibility.Validator, log *logger.Logger, events []models.Event, args []string, now time.Time) error {
	if len(args) < 2 {
		usage()
		return &models.InvalidQueryError{Field: "feedback", Reason: "need a rating and an event name"}
	}

	rating, err := strconv.Atoi(args[0])
	if err != nil {
		return &models.InvalidQueryError{Field: "rating", Reason: fmt.Sprintf("%q is not a number", args[0])}
	}

	ev, err := resolveTarget(engine, events, strings.Join(args[1:], " "), now)
	if err != nil {
		return err
	}

	decision, err := validator.ValidateFeedback(eligibility.FeedbackRequest{Event: ev, Rating: rating}, now)
	if err != nil {
		return err
	}

	if decision.Allowed {
		fmt.Printf("Feedback accepted for %q: %d/5.\n", ev.Name, rating)
	} else {
		fmt.Println(decision.Message)
	}
	log.LogEligibility("feedback", eventID(ev), outcome(decision))
	return nil
}

// resolveTarget finds the event a name refers to. An unknown name maps
// to a nil event so the validator produces its not-found denial; an
// ambiguous name lists the candidates for the user.
func resolveTarget(engine *search.Engine, events []models.Event, name string, now time.Time) (*models.Event, error) {
	res, err := engine.ResolveByName(events, name, now)
	if err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			return nil, nil
		}
		var ambiguous *models.AmbiguousNameError
		if errors.As(err, &ambiguous) {
			fmt.Printf("Multiple events match %q:\n", ambiguous.Query)
			for _, n := range ambiguous.Names {
				fmt.Printf("  - %s\n", n)
			}
			os.Exit(2)
		}
		return nil, err
	}
	return &res.Event, nil
}

func printResults(results []search.Result) {
	if len(results) == 0 {
		fmt.Println("No events found.")
		return
	}
	for _, r := range results {
		line := fmt.Sprintf("%-9s  %-18s  %s [%s]  %d/%d slots",
			r.Classification.Status,
			r.Classification.TimeDescription,
			r.Event.Name,
			r.Event.Category,
			r.Event.AvailableSlots,
			r.Event.TotalSlots)
		if r.Event.Location != "" {
			line += " @ " + r.Event.Location
		}
		fmt.Println(line)
	}
}

func eventID(ev *models.Event) string {
	if ev == nil {
		return "-"
	}
	return ev.ID
}

func outcome(d eligibility.Decision) string {
	if d.Allowed {
		return "ALLOWED"
	}
	return string(d.Reason)
}
