package main

import (
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/ayusman/janken/internal/app"
	"github.com/ayusman/janken/internal/game"
	"github.com/ayusman/janken/internal/server"
	"github.com/ayusman/janken/internal/tray"
)

var CLI struct {
	Addr       string  `short:"a" default:":8080" help:"HTTP address to listen on"`
	Camera     int     `short:"c" default:"0" help:"Camera device ID"`
	Difficulty string  `short:"d" default:"Easy" enum:"Easy,Medium,Hard" help:"Initial opponent difficulty"`
	Seed       uint64  `help:"Seed for the opponent's random source (0 = time-based)"`
	MotionPct  float64 `default:"1.0" help:"Motion threshold as percent of changed pixels"`
	StaticDir  string  `help:"Directory of web UI files to serve"`
	LogLevel   string  `default:"info" enum:"debug,info,warn,error" help:"Log level"`
	NoTray     bool    `help:"Run headless without the system tray"`
}

func main() {
	kctx := kong.Parse(&CLI)

	level, _ := zerolog.ParseLevel(CLI.LogLevel)
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()

	difficulty, _ := game.ParseDifficulty(CLI.Difficulty)

	strategist := game.NewStrategist()
	if CLI.Seed != 0 {
		strategist = game.NewSeededStrategist(CLI.Seed)
	}

	session := game.NewSession(difficulty, strategist)
	controller := game.NewController(session, quartz.NewReal())

	a := app.New(app.Config{
		CameraID:     CLI.Camera,
		MotionThresh: CLI.MotionPct,
		Logger:       log.With().Str("component", "app").Logger(),
	}, session, controller)

	if err := a.Start(); err != nil {
		log.Fatal().Err(err).Msg("starting pipeline")
	}
	defer a.Stop()

	srv := server.New(server.Config{
		App:       a,
		StaticDir: findStaticDir(),
		Logger:    log.With().Str("component", "server").Logger(),
	})

	go func() {
		log.Info().Str("addr", CLI.Addr).Str("session", session.ID()).Msg("listening")
		if err := srv.ListenAndServe(CLI.Addr); err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	if CLI.NoTray {
		select {}
	}

	t := tray.New()
	t.OnToggle(a.SetEnabled)
	t.OnOpen(func() {
		if err := openBrowser("http://localhost" + CLI.Addr); err != nil {
			log.Warn().Err(err).Msg("opening browser")
		}
	})
	t.OnQuit(func() {
		a.Stop()
		os.Exit(0)
	})

	// Keep the tray's gesture and score entries current.
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for range ticker.C {
			t.SetGesture(string(a.StableGesture()))
			status := session.Status()
			t.SetScore(status.Score())
		}
	}()

	t.Run()
	kctx.Exit(0)
}

// findStaticDir looks for the web UI in common locations, preferring an
// explicit flag.
func findStaticDir() string {
	if CLI.StaticDir != "" {
		return CLI.StaticDir
	}
	for _, p := range []string{"web", "../web"} {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			return p
		}
	}
	return ""
}

func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
