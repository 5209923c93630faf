// Package game wires the terminal, the city controller and the HUD into an
// interactive session.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"emoji-city/internal/city"
	"emoji-city/internal/config"
	"emoji-city/internal/entity"
	"emoji-city/internal/factory"
	"emoji-city/internal/registry"
	"emoji-city/internal/render"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// maxMessages bounds the message log.
const maxMessages = 50

// Game is the top-level orchestrator.
type Game struct {
	screen    tcell.Screen
	renderer  *render.Renderer
	hud       *render.HUD
	singleton *registry.Singleton
	ctrl      *city.Controller
	messages  []string
	mouseDown bool
	started   time.Time
	log       *zap.Logger
}

// New creates a Game on the real terminal.
func New(cfg *config.Config, log *zap.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	return newGame(screen, cfg, log), nil
}

// newGame builds the session on an initialized screen.
func newGame(screen tcell.Screen, cfg *config.Config, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	renderer := render.NewRenderer(screen, cfg.City.AreaWidth, cfg.City.AreaHeight)
	hud := render.NewHUD(screen, renderer.Bottom(), buttonLabels())

	singleton := &registry.Singleton{}
	reg := singleton.Get(
		registry.WithResources(cfg.City.StartingResources),
		registry.WithView(hud),
		registry.WithLogger(log.Named("registry")),
	)
	pools := factory.NewPools(renderer, factory.Capacities(cfg.Pools.Map()))

	opts := []city.Option{
		city.WithRules(city.Rules{Prices: cfg.Prices.Map(), RefundRate: cfg.City.RefundRate}),
		city.WithArea(float64(cfg.City.AreaWidth), float64(cfg.City.AreaHeight)),
		city.WithSnapshotFormat(cfg.Snapshot.Format),
		city.WithLogger(log.Named("city")),
	}
	if cfg.City.Seed != 0 {
		opts = append(opts, city.WithRand(rand.New(rand.NewSource(cfg.City.Seed))))
	}

	return &Game{
		screen:    screen,
		renderer:  renderer,
		hud:       hud,
		singleton: singleton,
		ctrl:      city.New(reg, pools, hud, opts...),
		started:   time.Now(),
		log:       log,
	}
}

// Run is the main loop. It returns when the player quits.
func (g *Game) Run() {
	defer g.screen.Fini()

	g.log.Info("session started", zap.Int("resources", g.ctrl.Registry().Resources()))
	g.addMessage("b/v/c add, B/V/C remove, r recycle, s save, l restore, t check, q quit.")

	for {
		g.draw()
		ev := g.screen.PollEvent()
		if ev == nil {
			break
		}
		if !g.handleEvent(ev) {
			break
		}
	}
	g.finish()
}

func (g *Game) draw() {
	g.renderer.DrawFrame()
	g.hud.Draw(g.messages)
}

// handleEvent processes one terminal event. It returns false on quit.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		return g.processAction(keyToAction(ev))
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		click := pressed && !g.mouseDown
		g.mouseDown = pressed
		if !click {
			return true
		}
		x, y := ev.Position()
		if i, ok := g.hud.ButtonAt(x, y); ok {
			return g.processAction(buttons[i].action)
		}
	}
	return true
}

// processAction applies one action. It returns false for ActionQuit.
func (g *Game) processAction(a Action) bool {
	if k, add, ok := kindOf(a); ok {
		if add {
			g.add(k)
		} else {
			g.remove(k)
		}
		return true
	}

	switch a {
	case ActionRecycleAll:
		n := g.ctrl.Registry().Len()
		refund := g.ctrl.RecycleAll()
		g.addMessage(fmt.Sprintf("Recycled %d entities (+%d).", n, refund))
	case ActionSave:
		if err := g.ctrl.Save(); err != nil {
			g.log.Error("save failed", zap.Error(err))
			g.addMessage("Save failed.")
			return true
		}
		g.addMessage("State saved.")
	case ActionRestore:
		restored, dropped, err := g.ctrl.Restore()
		switch {
		case errors.Is(err, city.ErrNoSnapshot):
			g.addMessage("No saved state.")
		case err != nil:
			g.log.Error("restore failed", zap.Error(err))
			g.addMessage("Restore failed.")
		case dropped > 0:
			g.addMessage(fmt.Sprintf("State restored (%d entities, %d did not fit).", restored, dropped))
		default:
			g.addMessage(fmt.Sprintf("State restored (%d entities).", restored))
		}
	case ActionCheckSingleton:
		if g.ctrl.CheckSingleton(g.singleton) {
			g.addMessage("Singleton check: same instance.")
		} else {
			g.addMessage("Singleton check: DIFFERENT instances.")
		}
	case ActionQuit:
		return false
	}
	return true
}

func (g *Game) add(k entity.Kind) {
	e, err := g.ctrl.Add(k)
	switch {
	case errors.Is(err, city.ErrInsufficientResources):
		g.addMessage(fmt.Sprintf("Not enough resources for a %s (%d).", k.Def().Name, g.ctrl.Rules().Price(k)))
	case errors.Is(err, city.ErrAtCapacity):
		g.addMessage(fmt.Sprintf("No %s left in the pool.", k.Def().Name))
	case err != nil:
		g.log.Error("add failed", zap.Stringer("kind", k), zap.Error(err))
	default:
		g.addMessage(fmt.Sprintf("%s %s added (-%d).", e.Kind().Glyph(), k.Def().Name, g.ctrl.Rules().Price(k)))
	}
}

func (g *Game) remove(k entity.Kind) {
	if err := g.ctrl.Remove(k); err != nil {
		g.addMessage(fmt.Sprintf("No active %s to remove.", k.Def().Name))
		return
	}
	g.addMessage(fmt.Sprintf("%s %s removed (+%d).", k.Glyph(), k.Def().Name, g.ctrl.Rules().Refund(k)))
}

// finish records the session summary.
func (g *Game) finish() {
	stats := g.ctrl.Stats()
	g.log.Info("session ended",
		zap.Int("resources", stats.EndResources),
		zap.Int("peak_active", stats.PeakActive))
	err := saveSessionLog(SessionLog{Started: g.started, Ended: time.Now(), Stats: stats})
	if err != nil {
		g.log.Warn("session log not saved", zap.Error(err))
	}
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}
