package main

import (
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/spireclimb/spire"
	"github.com/spireclimb/spire/config"
	"github.com/spireclimb/spire/event"
	"github.com/spireclimb/spire/sim"
	"github.com/spireclimb/spire/worker"
)

const recordingPath = "session.rec"

// The following program runs a headless climb session: it drives the fixed
// step scheduler at a render-like cadence with scripted input and logs the
// events the core emits.
func main() {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	log.Level = logrus.DebugLevel

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Fatalf("sentry init: %v", err)
		}
		defer sentry.Recover()
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	path := "config.toml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := config.Read(path)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	session, err := spire.New(log, cfg)
	if err != nil {
		log.Fatalln(err)
	}

	recorder := event.NewRecorder()
	session.Handle(recorder)
	session.Handle(&logHandler{log: log})

	if os.Getenv("SPIRE_DEBUG") != "" {
		for _, mode := range []int{sim.DebugModeCollisions, sim.DebugModeMovementSim, sim.DebugModeScheduler, sim.DebugModeGenerator} {
			session.Debugger().Toggle(mode)
		}
		session.DumpLevel()
	}

	// Drive the scheduler at ~144 fps for a minute with scripted input:
	// circle toward the spiral and hop every half second.
	session.SetMoveVector(mgl32.Vec2{0.4, 1})
	start := time.Now()
	frame := time.NewTicker(time.Second / 144)
	defer frame.Stop()

	lastFlush := start
	for now := range frame.C {
		if now.Sub(start) > time.Minute {
			break
		}
		if now.Sub(start)%(500*time.Millisecond) < 10*time.Millisecond {
			session.RequestJump()
		}
		session.Update(now)

		// Flush the recording off the frame loop every few seconds.
		if now.Sub(lastFlush) > 5*time.Second {
			lastFlush = now
			dat := append([]byte(nil), recorder.Bytes()...)
			worker.Submit(func() {
				if err := os.WriteFile(recordingPath, dat, 0644); err != nil {
					log.Errorf("flush recording: %v", err)
				}
			})
		}
	}

	worker.SubmitWait(func() {
		if err := os.WriteFile(recordingPath, recorder.Bytes(), 0644); err != nil {
			log.Errorf("write recording: %v", err)
		}
	})

	snap := session.Snapshot()
	log.Infof("session over at pos=%v, %d bytes of v%s events recorded to %s",
		snap.Pos, len(recorder.Bytes()), event.EventsVersion, recordingPath)
}

// logHandler prints the outward event stream.
type logHandler struct {
	sim.NopHandler
	log *logrus.Logger
}

func (h *logHandler) HandleScore(score int) {
	h.log.Infof("score: %d", score)
}

func (h *logHandler) HandleStatus(status string) {
	if status != "" {
		h.log.Infof("status: %s", status)
	}
}
