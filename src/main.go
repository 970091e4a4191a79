package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cabinctl/src/config"
	"cabinctl/src/elev"
	"cabinctl/src/panel"
	"cabinctl/src/scenario"
	"cabinctl/src/types"
	"cabinctl/src/utils"

	"github.com/eiannone/keyboard"
)

const panelCapacity = 16

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	envPath := flag.String("env", "", "Path to dotenv file with CABIN_* overrides")
	scenarioPath := flag.String("scenario", "", "Run a YAML scenario instead of the interactive simulator")
	verbose := flag.Bool("v", false, "Include idle ticks in scenario output")
	flag.Parse()

	os.Exit(run(*configPath, *envPath, *scenarioPath, *verbose))
}

func run(configPath, envPath, scenarioPath string, verbose bool) int {
	cfg, err := config.Load(configPath, envPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logFile, err := elev.InitLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logFile.Close()

	cabin := elev.NewCabin(cfg)
	if scenarioPath != "" {
		return runScenario(cabin, scenarioPath, verbose)
	}
	runInteractive(cabin, cfg)
	return 0
}

func runScenario(cabin *elev.Cabin, path string, verbose bool) int {
	sc, err := scenario.Load(path)
	if err != nil {
		slog.Error("Loading scenario failed", "path", path, "err", err)
		return 1
	}
	trace, err := scenario.Run(cabin, sc)
	utils.PrintTrace(os.Stdout, trace, verbose)
	if err != nil {
		slog.Error("Scenario failed", "name", sc.Name, "err", err)
		return 1
	}
	slog.Info("Scenario passed", "name", sc.Name, "ticks", len(trace))
	return 0
}

// runInteractive ticks the cabin at the configured interval while keys are read in the background.
func runInteractive(cabin *elev.Cabin, cfg config.Config) {
	cabinMgr := elev.StartCabinMgr(cabin)
	defer cabinMgr.Stop()
	buttons := panel.New(cfg.NumFloors, panelCapacity)
	quitCh := make(chan struct{})

	fmt.Println("keys: 0-9 floor button | h+0-9 call button | o open | c close | q quit")
	go readKeys(buttons, cabinMgr, cfg.TickInterval, quitCh)

	ticker := time.NewTicker(cfg.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-quitCh:
			fmt.Println()
			slog.Info("Stopping", "requestHistory", buttons.History())
			return
		case <-ticker.C:
			ev := buttons.Next()
			action := cabinMgr.Tick(ev)
			state := cabinMgr.GetState()
			if action != types.Nothing {
				slog.Info("Action", "action", elev.FormatAction(action, state), "event", ev)
			}
			utils.PrintStatus(os.Stdout, state)
		}
	}
}

func readKeys(buttons *panel.Panel, cabinMgr *elev.CabinMgr, tickInterval time.Duration, quitCh chan<- struct{}) {
	defer close(quitCh)
	callPrefix := false
	for {
		char, key, err := keyboard.GetSingleKey()
		if err != nil {
			slog.Error("Reading keyboard failed", "err", err)
			return
		}
		if key == keyboard.KeyCtrlC || char == 'q' {
			return
		}

		var ev types.Event
		switch {
		case char >= '0' && char <= '9':
			floor := int(char - '0')
			if callPrefix {
				ev = types.CallButton(floor)
			} else {
				ev = types.FloorButton(floor)
			}
		case char == 'h':
			callPrefix = true
			continue
		case char == 'o':
			ev = types.DoorOpenCmd()
		case char == 'c':
			ev = types.DoorCloseCmd()
		default:
			continue
		}
		callPrefix = false

		if err := buttons.Press(ev); err != nil {
			slog.Warn("Button press dropped", "err", err)
			continue
		}
		if ev.HasFloor() {
			if ticks, ok := cabinMgr.EstimateTicks(ev.Floor); ok {
				slog.Info("Request accepted", "event", ev, "etaTicks", ticks, "eta", time.Duration(ticks)*tickInterval)
			}
		}
	}
}
