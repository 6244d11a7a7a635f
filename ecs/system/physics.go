package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/common"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypePlatform
	collisionTypeStar
	collisionTypeBomb
	collisionTypeBounds
)

// groundNormalY is the minimum downward component of the player->platform
// contact normal that counts as standing on it.
const groundNormalY = 0.5

// PhysicsSystem steps a Chipmunk space at a fixed 1/TPS and mirrors bodies
// back into Transforms. Collision callbacks never touch components; they only
// queue CollisionEvents for the systems that run after it.
type PhysicsSystem struct {
	space         *cp.Space
	gravity       float64
	handlersReady bool
	world         *ecs.World

	entities     map[ecs.Entity]*bodyInfo
	boundsEntity ecs.Entity
	grounded     map[ecs.Entity]bool
}

type bodyInfo struct {
	body    *cp.Body
	shapes  []*cp.Shape
	static  bool
	inSpace bool
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		gravity:  common.Gravity,
		entities: make(map[ecs.Entity]*bodyInfo),
		grounded: make(map[ecs.Entity]bool),
	}
}

// SetGravity changes downward acceleration; it applies from the next step.
func (ps *PhysicsSystem) SetGravity(g float64) {
	if ps == nil {
		return
	}
	ps.gravity = g
	if ps.space != nil {
		ps.space.SetGravity(cp.Vector{X: 0, Y: g})
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	if ps.space == nil {
		ps.space = cp.NewSpace()
		ps.space.Iterations = 20
		ps.space.SetGravity(cp.Vector{X: 0, Y: ps.gravity})
		ps.handlersReady = false
	}
	ps.world = w

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.syncWorldBounds(w)

	if paused(w) {
		return
	}

	clear(ps.grounded)
	ps.space.Step(1.0 / common.TPS)

	ps.syncTransforms(w)
	ps.flushPlayerContacts(w)
}

func paused(w *ecs.World) bool {
	ent, ok := w.First(component.PhysicsStateComponent.Kind())
	if !ok {
		return false
	}
	st, ok := ecs.Get(w, ent, component.PhysicsStateComponent.Kind())
	return ok && st.Paused
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	groundHandler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypePlatform)
	groundHandler.UserData = ps
	groundHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		playerShape, _ := arb.Shapes()
		player, ok := shapeEntity(playerShape)
		if !ok {
			return true
		}
		// Normal points from the player towards the platform; +Y is down.
		if arb.Normal().Y > groundNormalY {
			sys.grounded[player] = true
		}
		return true
	}

	overlap := func(kind ecs.CollisionEventKind) cp.CollisionBeginFunc {
		return func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			sys, ok := userData.(*PhysicsSystem)
			if !ok || sys == nil || sys.world == nil {
				return false
			}
			a, b := arb.Shapes()
			player, okA := shapeEntity(a)
			other, okB := shapeEntity(b)
			if okA && okB {
				sys.world.Events().PushCollision(ecs.CollisionEvent{Entity: player, Other: other, Kind: kind})
			}
			return false
		}
	}

	starHandler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeStar)
	starHandler.UserData = ps
	starHandler.BeginFunc = overlap(ecs.CollisionEventCollect)

	bombHandler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeBomb)
	bombHandler.UserData = ps
	bombHandler.BeginFunc = overlap(ecs.CollisionEventHitHazard)

	ps.handlersReady = true
}

func shapeEntity(s *cp.Shape) (ecs.Entity, bool) {
	if s == nil {
		return 0, false
	}
	e, ok := s.UserData.(ecs.Entity)
	return e, ok
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		info := ps.entities[e]
		if info != nil && bodyComp.Shape == nil {
			// Body was refreshed; rebuild it from the current component.
			ps.removeInfo(info)
			delete(ps.entities, e)
			info = nil
		}
		if info == nil {
			info = ps.createBodyInfo(w, e, transform, bodyComp)
			if info == nil {
				continue
			}
			ps.entities[e] = info
			bodyComp.Body = info.body
			bodyComp.Shape = info.shapes[0]
		}

		if isActive(w, e) {
			if !info.inSpace {
				ps.enable(info, transform, bodyComp)
			}
		} else if info.inSpace {
			ps.disable(info)
		}
	}
}

func isActive(w *ecs.World, e ecs.Entity) bool {
	a, ok := ecs.Get(w, e, component.ActiveComponent.Kind())
	return !ok || a.Enabled
}

func (ps *PhysicsSystem) createBodyInfo(w *ecs.World, e ecs.Entity, transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	radius := bodyComp.Radius
	if radius <= 0 && (width <= 0 || height <= 0) {
		width = 32
		height = 32
	}

	ctype := collisionTypeFor(w, e)
	filter := shapeFilterFor(w, e, bodyComp)

	info := &bodyInfo{static: bodyComp.Static}
	var shape *cp.Shape

	if bodyComp.Static {
		info.body = ps.space.StaticBody
		if radius > 0 {
			shape = cp.NewCircle(info.body, radius, cp.Vector{X: transform.X, Y: transform.Y})
		} else {
			bb := cp.BB{L: transform.X - width/2, B: transform.Y - height/2, R: transform.X + width/2, T: transform.Y + height/2}
			shape = cp.NewBox2(info.body, bb, 0)
		}
	} else {
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		// Infinite moment: arcade bodies never rotate.
		info.body = cp.NewBody(mass, cp.INFINITY)
		if radius > 0 {
			shape = cp.NewCircle(info.body, radius, cp.Vector{})
		} else {
			shape = cp.NewBox(info.body, width, height, 0)
		}
	}

	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(ctype)
	shape.SetFilter(filter)
	shape.UserData = e
	info.shapes = []*cp.Shape{shape}
	return info
}

func (ps *PhysicsSystem) enable(info *bodyInfo, transform *component.Transform, bodyComp *component.PhysicsBody) {
	if !info.static {
		info.body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
		info.body.SetVelocity(bodyComp.VelocityX, bodyComp.VelocityY)
		ps.space.AddBody(info.body)
	}
	for _, s := range info.shapes {
		ps.space.AddShape(s)
	}
	info.inSpace = true
}

func (ps *PhysicsSystem) disable(info *bodyInfo) {
	for _, s := range info.shapes {
		if ps.space.ContainsShape(s) {
			ps.space.RemoveShape(s)
		}
	}
	if !info.static && ps.space.ContainsBody(info.body) {
		ps.space.RemoveBody(info.body)
	}
	info.inSpace = false
}

func (ps *PhysicsSystem) removeInfo(info *bodyInfo) {
	if info == nil || !info.inSpace {
		return
	}
	ps.disable(info)
}

func collisionTypeFor(w *ecs.World, e ecs.Entity) cp.CollisionType {
	switch {
	case ecs.Has(w, e, component.PlayerTagComponent.Kind()):
		return collisionTypePlayer
	case ecs.Has(w, e, component.StarComponent.Kind()):
		return collisionTypeStar
	case ecs.Has(w, e, component.BombComponent.Kind()):
		return collisionTypeBomb
	default:
		return collisionTypePlatform
	}
}

func shapeFilterFor(w *ecs.World, e ecs.Entity, bodyComp *component.PhysicsBody) cp.ShapeFilter {
	category := uint32(1)
	mask := ^uint32(0)
	if layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
		if layer.Category != 0 {
			category = layer.Category
		}
		if layer.Mask != 0 {
			mask = layer.Mask
		}
	}
	if !bodyComp.CollideWorldBounds {
		mask &^= component.CollisionCategoryBounds
	}
	return cp.NewShapeFilter(cp.NO_GROUP, uint(category), uint(mask))
}

func (ps *PhysicsSystem) syncWorldBounds(w *ecs.World) {
	boundsEntity, ok := w.First(component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	if _, exists := ps.entities[boundsEntity]; exists {
		return
	}
	bounds, ok := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind())
	if !ok || bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}

	worldW := bounds.Width
	worldH := bounds.Height
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},           // top
		{a: cp.Vector{X: 0, Y: worldH}, b: cp.Vector{X: worldW, Y: worldH}}, // bottom
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},           // left
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}}, // right
	}

	filter := cp.NewShapeFilter(cp.NO_GROUP, uint(component.CollisionCategoryBounds), cp.ALL_CATEGORIES)
	info := &bodyInfo{static: true, body: ps.space.StaticBody, inSpace: true}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, 1)
		shape.SetElasticity(1)
		shape.SetCollisionType(collisionTypeBounds)
		shape.SetFilter(filter)
		shape.UserData = boundsEntity
		ps.space.AddShape(shape)
		info.shapes = append(info.shapes, shape)
	}

	ps.entities[boundsEntity] = info
	ps.boundsEntity = boundsEntity
}

func (ps *PhysicsSystem) flushPlayerContacts(w *ecs.World) {
	ecs.ForEach(w, component.PlayerCollisionComponent.Kind(), func(e ecs.Entity, pc *component.PlayerCollision) {
		pc.Grounded = ps.grounded[e]
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil || bodyComp.Static {
			return
		}
		info := ps.entities[e]
		if info == nil || !info.inSpace {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		vel := bodyComp.Body.Velocity()
		bodyComp.VelocityX, bodyComp.VelocityY = vel.X, vel.Y
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) {
			if e == ps.boundsEntity && ecs.Has(w, e, component.LevelBoundsComponent.Kind()) {
				continue
			}
			if ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
				continue
			}
		}
		ps.removeInfo(info)
		delete(ps.entities, e)
		delete(ps.grounded, e)
	}
}
