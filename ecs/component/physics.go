package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Width and Height are the world-space collider size. VelocityX/VelocityY seed
// the body when it enters the space.
type PhysicsBody struct {
	Body               *cp.Body
	Shape              *cp.Shape
	Width              float64
	Height             float64
	Radius             float64
	Mass               float64
	Friction           float64
	Elasticity         float64
	Static             bool
	CollideWorldBounds bool
	VelocityX          float64
	VelocityY          float64
}

// Velocity reads the live body velocity, or the seed values before the body
// exists.
func (p *PhysicsBody) Velocity() (float64, float64) {
	if p == nil {
		return 0, 0
	}
	if p.Body != nil && !p.Static {
		v := p.Body.Velocity()
		return v.X, v.Y
	}
	return p.VelocityX, p.VelocityY
}

// SetVelocity writes both the live body and the seed values.
func (p *PhysicsBody) SetVelocity(vx, vy float64) {
	if p == nil {
		return
	}
	p.VelocityX, p.VelocityY = vx, vy
	if p.Body != nil && !p.Static {
		p.Body.SetVelocity(vx, vy)
	}
}

func (p *PhysicsBody) SetVelocityX(vx float64) {
	_, vy := p.Velocity()
	p.SetVelocity(vx, vy)
}

func (p *PhysicsBody) SetVelocityY(vy float64) {
	vx, _ := p.Velocity()
	p.SetVelocity(vx, vy)
}

// Teleport moves a dynamic body (and its seed state) to x,y with the given
// velocity.
func (p *PhysicsBody) Teleport(x, y, vx, vy float64) {
	if p == nil {
		return
	}
	if p.Body != nil && !p.Static {
		p.Body.SetPosition(cp.Vector{X: x, Y: y})
	}
	p.SetVelocity(vx, vy)
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// PhysicsState holds the global simulation switch.
type PhysicsState struct {
	Paused bool
}

var PhysicsStateComponent = NewComponent[PhysicsState]()
