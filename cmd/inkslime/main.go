package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lunamare/inkslime/audio"
	"github.com/lunamare/inkslime/components"
	"github.com/lunamare/inkslime/config"
	"github.com/lunamare/inkslime/content"
	"github.com/lunamare/inkslime/core"
	"github.com/lunamare/inkslime/engine"
	"github.com/lunamare/inkslime/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "path to a TOML config file")
	mute := flag.Bool("mute", false, "disable audio")
	flag.Parse()

	cfg := config.Defaults()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	var effects engine.EffectSink = engine.NopEffectSink{}
	var player *audio.Player
	if cfg.Audio.Enabled && !*mute {
		p := audio.NewPlayer(cfg.Audio.MasterVolume)
		if err := p.Initialize(); err != nil {
			// Non-fatal, the game can run without sound
			log.Warn("audio init failed", zap.Error(err))
		} else {
			defer p.Cleanup()
			effects = p
			player = p
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Reset the terminal before the panic escapes, otherwise the trace is
	// unreadable.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			panic(r)
		}
	}()

	world := core.Rect{W: cfg.World.Width, H: cfg.World.Height}
	sim := engine.NewSimulation(engine.SimulationConfig{
		CellSize: cfg.Engine.CellSize,
		MaxStep:  cfg.Engine.MaxStep.Duration,
	}, effects, log)
	for _, color := range content.InkColors {
		sim.Pool.SetCap("ink_slime_"+color, cfg.Pools.ProjectileCap)
	}

	factory := content.NewFactory(sim.Manager, sim.Pool, world, log)
	game := &game{
		cfg:      cfg,
		sim:      sim,
		factory:  factory,
		world:    world,
		renderer: render.NewTerminalRenderer(screen, world),
		screen:   screen,
		audio:    player,
		log:      log,
	}
	if err := game.setup(); err != nil {
		return err
	}
	game.loop()
	return nil
}

type game struct {
	cfg      *config.Config
	sim      *engine.Simulation
	factory  *content.Factory
	world    core.Rect
	renderer *render.TerminalRenderer
	screen   tcell.Screen
	audio    *audio.Player
	log      *zap.Logger

	player    *engine.Entity
	inkColors []string
	inkIndex  int
}

func (g *game) setup() error {
	player, err := g.factory.CreatePlayer(g.world.W/2, g.world.H*0.8)
	if err != nil {
		return err
	}
	g.player = player
	g.inkColors = content.InkColors

	for i := 0; i < 4; i++ {
		x := g.world.W * (0.15 + 0.2*float64(i))
		if _, err := g.factory.CreateShip(randomShipSize(), x, g.world.H*0.2); err != nil {
			return err
		}
	}
	if _, err := g.factory.CreateCaptain(g.world.W*0.5, g.world.H*0.1); err != nil {
		return err
	}
	for i := 0; i < 2; i++ {
		x := g.world.W * (0.3 + 0.4*float64(i))
		if _, err := g.factory.CreateTurtle(x, g.world.H*0.45); err != nil {
			return err
		}
	}
	for i := 0; i < 3; i++ {
		x := g.world.W * (0.2 + 0.3*float64(i))
		if _, err := g.factory.CreateFish(x, g.world.H*0.6); err != nil {
			return err
		}
	}
	return nil
}

func randomShipSize() string {
	switch rand.Intn(3) {
	case 0:
		return content.ShipSmall
	case 1:
		return content.ShipLarge
	default:
		return content.ShipMedium
	}
}

func (g *game) loop() {
	ticker := time.NewTicker(g.cfg.Engine.TickRate.Duration)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- g.screen.PollEvent()
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if !g.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			g.sim.Tick(dt)
			g.renderer.BeginFrame()
			g.sim.Render(g.renderer)
			g.renderer.EndFrame(g.sim.TickCount(), g.sim.Manager.ActiveCount())
		}
	}
}

func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev)
	case *tcell.EventResize:
		g.renderer.Resize()
	}
	return true
}

func (g *game) handleKey(ev *tcell.EventKey) bool {
	const moveSpeed = 180.0

	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}

	t := g.playerTransform()
	w := g.playerWeapon()
	if t == nil || w == nil {
		return true
	}

	switch ev.Key() {
	case tcell.KeyLeft:
		t.Velocity = core.Vec2{X: -moveSpeed}
	case tcell.KeyRight:
		t.Velocity = core.Vec2{X: moveSpeed}
	case tcell.KeyUp:
		t.Velocity = core.Vec2{Y: -moveSpeed}
	case tcell.KeyDown:
		t.Velocity = core.Vec2{Y: moveSpeed}
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q':
			return false
		case 'h':
			t.Velocity = core.Vec2{X: -moveSpeed}
		case 'l':
			t.Velocity = core.Vec2{X: moveSpeed}
		case 'k':
			t.Velocity = core.Vec2{Y: -moveSpeed}
		case 'j':
			t.Velocity = core.Vec2{Y: moveSpeed}
		case ' ':
			w.StartFiring()
		case 'x':
			w.StopFiring()
			t.Velocity = core.Vec2{}
		case '[':
			w.Rotate(-1)
		case ']':
			w.Rotate(1)
		case 'm':
			if g.audio != nil {
				g.audio.SetMuted(!g.audio.Muted())
			}
		case '1', '2', '3', '4', '5':
			g.selectInk(int(r - '1'))
		}
	}
	return true
}

func (g *game) selectInk(i int) {
	if i < 0 || i >= len(g.inkColors) {
		return
	}
	g.inkIndex = i
	if w := g.playerWeapon(); w != nil {
		w.InkColor = g.inkColors[i]
	}
}

func (g *game) playerTransform() *components.Transform {
	c, ok := g.player.Component(engine.KindTransform)
	if !ok {
		return nil
	}
	return c.(*components.Transform)
}

func (g *game) playerWeapon() *components.Weapon {
	c, ok := g.player.Component(engine.KindWeapon)
	if !ok {
		return nil
	}
	return c.(*components.Weapon)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	// The terminal is owned by tcell while the game runs.
	zapCfg.OutputPaths = []string{"inkslime.log"}
	zapCfg.ErrorOutputPaths = []string{"inkslime.log"}

	return zapCfg.Build()
}
