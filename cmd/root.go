// cmd/root.go
package cmd

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/railplan/railplan/internal/planner"
	"github.com/railplan/railplan/internal/railnet"
	"github.com/railplan/railplan/internal/routing"
	"github.com/railplan/railplan/internal/search"
	"github.com/railplan/railplan/internal/solverconfig"
)

// Exit codes for the three fatal error kinds. Success is always 0.
const (
	exitInputFormat    = 1
	exitUnknownStation = 2
	exitInfeasible     = 3
)

var (
	stationFlags []string
	routeFlags   []string
	packageFlags []string
	trainFlags   []string

	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "railplan",
	Short: "Computes a minimum-makespan delivery plan over a station network",
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan package deliveries across a fleet of trains",
	Run:   runPlan,
}

// Execute runs the root command, exiting the process nonzero on
// failure. Run funcs call os.Exit (directly or via fatalInput and
// fatalNetwork) rather than returning an error, so this wrapper only guards cobra's own usage
// errors (unknown flags, malformed invocations).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	planCmd.Flags().StringArrayVar(&stationFlags, "station", nil, "Station NAME (can be repeated)")
	planCmd.Flags().StringArrayVar(&routeFlags, "route", nil, "Route NAME,STATION1,STATION2,TIME (can be repeated)")
	planCmd.Flags().StringArrayVar(&packageFlags, "package", nil, "Package NAME,WEIGHT,SRC,DST (can be repeated)")
	planCmd.Flags().StringArrayVar(&trainFlags, "train", nil, "Train NAME,CAPACITY,INITIAL_STATION (can be repeated)")

	planCmd.Flags().StringVar(&configPath, "config", "", "Path to a solver YAML config file")
	planCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error); overrides --config")

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) {
	log := logrus.New()

	cfg := solverconfig.Default()
	if configPath != "" {
		loaded, err := solverconfig.Load(configPath)
		if err != nil {
			log.Errorf("loading config: %v", err)
			os.Exit(exitInputFormat)
		}
		cfg = *loaded
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Errorf("invalid config: %v", err)
		os.Exit(exitInputFormat)
	}
	level, err := logrus.ParseLevel(orDefault(cfg.LogLevel, "info"))
	if err != nil {
		log.Errorf("invalid log level: %s", cfg.LogLevel)
		os.Exit(exitInputFormat)
	}
	log.SetLevel(level)

	routes, err := parseRoutes(routeFlags)
	if err != nil {
		fatalInput(log, err)
	}
	packages, err := parsePackages(packageFlags)
	if err != nil {
		fatalInput(log, err)
	}
	trains, err := parseTrains(trainFlags)
	if err != nil {
		fatalInput(log, err)
	}

	net, err := railnet.NewNetwork(parseStations(stationFlags), routes, packages, trains)
	if err != nil {
		fatalNetwork(log, err)
	}

	log.Infof("network built: stations=%d routes=%d packages=%d trains=%d",
		len(net.Stations), len(net.Routes), len(net.Packages), len(net.Trains))

	routeMap := routing.BuildRouteMap(net)
	log.Infof("route map built")

	goal, err := search.Plan(planner.NewInitialState(net, routeMap), log)
	if err != nil {
		if errors.Is(err, search.ErrInfeasible) {
			log.Errorf("%v", err)
			os.Exit(exitInfeasible)
		}
		log.Errorf("search failed: %v", err)
		os.Exit(exitInfeasible)
	}

	printPlan(cmd.OutOrStdout(), goal, cfg.Coalesce())
}

func fatalInput(log *logrus.Logger, err error) {
	log.Errorf("%v", err)
	os.Exit(exitInputFormat)
}

func fatalNetwork(log *logrus.Logger, err error) {
	var unknown *railnet.UnknownStationError
	if errors.As(err, &unknown) {
		log.Errorf("%v", err)
		os.Exit(exitUnknownStation)
	}
	log.Errorf("%v", err)
	os.Exit(exitInputFormat)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
