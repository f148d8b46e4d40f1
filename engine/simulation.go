package engine

import (
	"time"

	"go.uber.org/zap"
)

// SimulationConfig is the scalar configuration surface consumed by the core.
// No dynamic reconfiguration happens mid-tick.
type SimulationConfig struct {
	// CellSize is the spatial grid cell edge in world units.
	CellSize float64
	// MaxStep clamps pathological dt spikes (debugger pauses, suspended
	// terminals) to a maximum simulation step. Zero disables clamping.
	MaxStep time.Duration
}

// Simulation is the top-level context owning the entity manager, object pool,
// spatial grid, and collision pipeline. It is constructed explicitly and
// passed by reference; there is no global instance, so parallel simulations
// (and parallel tests) coexist freely.
type Simulation struct {
	Manager  *Manager
	Pool     *Pool
	Grid     *SpatialGrid
	Pipeline *CollisionPipeline

	log     *zap.Logger
	maxStep time.Duration
	tick    uint64
}

func NewSimulation(cfg SimulationConfig, effects EffectSink, log *zap.Logger) *Simulation {
	if log == nil {
		log = zap.NewNop()
	}
	manager := NewManager(log)
	pool := NewPool(log)
	manager.SetPool(pool)
	grid := NewSpatialGrid(cfg.CellSize)

	return &Simulation{
		Manager:  manager,
		Pool:     pool,
		Grid:     grid,
		Pipeline: NewCollisionPipeline(manager, grid, effects, log),
		log:      log,
		maxStep:  cfg.MaxStep,
	}
}

// Tick advances the simulation by one step. One logical thread drives this;
// a tick always runs to completion once started. Order per tick:
// commit pending adds/removes, update active entities (motion included),
// rebuild the grid with fresh bounds, run the collision pipeline, then sweep
// destroy requests into the removal queue. Destruction requested by collision
// handlers therefore commits at the very next tick.
func (s *Simulation) Tick(dt time.Duration) {
	if s.maxStep > 0 && dt > s.maxStep {
		dt = s.maxStep
	}
	if dt < 0 {
		dt = 0
	}

	s.Manager.CommitPending()
	s.Manager.Update(dt)
	s.Pipeline.Rebuild()
	s.Pipeline.Step()
	s.Manager.SweepDestroyed()
	s.tick++
}

// Render forwards to the manager's render pass. Call after Tick, once per
// frame, from the rendering collaborator.
func (s *Simulation) Render(surface Surface) {
	s.Manager.Render(surface)
}

// TickCount reports completed ticks since construction or the last Clear.
func (s *Simulation) TickCount() uint64 { return s.tick }

// Clear tears down all state: entities, indices, grid, and pool. Entities are
// destroyed outright, not recycled.
func (s *Simulation) Clear() {
	s.Manager.Clear()
	s.Grid.Clear()
	s.Pool.Clear()
	s.tick = 0
}
