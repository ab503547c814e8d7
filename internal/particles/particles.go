// internal/particles/particles.go
package particles

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Point counts for each generator.
const (
	HelixSteps      = 200
	HelixRadius     = 1.5
	HelixRungEvery  = 10
	HelixRungPoints = 5
	GalaxyPoints    = 5000
	GalaxyBranches  = 3
	GalaxyRadius    = 5.0
	FieldNodes      = 50
	FieldLinkRadius = 2.5
	MatrixBlocks    = 30
)

// Buffer is a flat list of x, y, z triples.
type Buffer []float32

// Len is the number of 3D points in the buffer.
func (b Buffer) Len() int { return len(b) / 3 }

func (b *Buffer) push(x, y, z float64) {
	*b = append(*b, float32(x), float32(y), float32(z))
}

// Geometry is what the front-end animation consumes for one shape.
type Geometry struct {
	Shape     string  `json:"shape"`
	Positions Buffer  `json:"positions"`
	Secondary Buffer  `json:"secondary,omitempty"`
	Colors    Buffer  `json:"colors,omitempty"`
	Links     []Link  `json:"links,omitempty"`
	Blocks    []Block `json:"blocks,omitempty"`
}

// Link joins two nearby nodes of the quantum field.
type Link struct {
	From [3]float32 `json:"from"`
	To   [3]float32 `json:"to"`
}

// Block is one floating label of the code matrix.
type Block struct {
	Position      [3]float32 `json:"position"`
	Label         string     `json:"label"`
	Speed         float32    `json:"speed"`
	RotationSpeed float32    `json:"rotation_speed"`
}

var generators = map[string]func(*rand.Rand) Geometry{
	"helix":  func(*rand.Rand) Geometry { return Helix() },
	"galaxy": Galaxy,
	"field":  QuantumField,
	"matrix": CodeMatrix,
}

// Shapes lists the generator names in a stable order.
func Shapes() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate builds the named shape. A nil rng uses a randomly seeded source.
func Generate(shape string, rng *rand.Rand) (Geometry, error) {
	gen, ok := generators[shape]
	if !ok {
		return Geometry{}, fmt.Errorf("unknown particle shape %q", shape)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return gen(rng), nil
}

// Helix is a double helix of 2*HelixSteps points with rungs every HelixRungEvery steps.
// The strands go into Positions and the rung particles into Secondary.
func Helix() Geometry {
	strands := make(Buffer, 0, HelixSteps*2*3)
	rungs := make(Buffer, 0, HelixSteps/HelixRungEvery*HelixRungPoints*3)

	for i := 0; i < HelixSteps; i++ {
		t := float64(i) / HelixSteps * math.Pi * 8
		y := float64(i)/HelixSteps*8 - 4

		x1, z1 := math.Cos(t)*HelixRadius, math.Sin(t)*HelixRadius
		x2, z2 := math.Cos(t+math.Pi)*HelixRadius, math.Sin(t+math.Pi)*HelixRadius
		strands.push(x1, y, z1)
		strands.push(x2, y, z2)

		if i%HelixRungEvery == 0 {
			for j := 0; j < HelixRungPoints; j++ {
				f := float64(j) / (HelixRungPoints - 1)
				rungs.push(lerp(x1, x2, f), y, lerp(z1, z2, f))
			}
		}
	}

	return Geometry{Shape: "helix", Positions: strands, Secondary: rungs}
}

// Galaxy is a spiral point cloud with one HSL-derived color per point.
func Galaxy(rng *rand.Rand) Geometry {
	positions := make(Buffer, 0, GalaxyPoints*3)
	colors := make(Buffer, 0, GalaxyPoints*3)

	jitter := func() float64 {
		sign := 1.0
		if rng.Float64() < 0.5 {
			sign = -1
		}
		return math.Pow(rng.Float64(), 3) * sign * 0.3
	}

	for i := 0; i < GalaxyPoints; i++ {
		radius := rng.Float64() * GalaxyRadius
		spin := radius * 0.5
		branch := float64(i%GalaxyBranches) * (math.Pi * 2 / GalaxyBranches)

		positions.push(
			math.Cos(branch+spin)*radius+jitter(),
			jitter(),
			math.Sin(branch+spin)*radius+jitter(),
		)
		colors.push(hsl(0.6+rng.Float64()*0.1, 0.8, 0.6))
	}

	return Geometry{Shape: "galaxy", Positions: positions, Colors: colors}
}

// QuantumField scatters nodes in a box and links every pair closer than FieldLinkRadius.
func QuantumField(rng *rand.Rand) Geometry {
	nodes := make(Buffer, 0, FieldNodes*3)
	for i := 0; i < FieldNodes; i++ {
		nodes.push((rng.Float64()-0.5)*8, (rng.Float64()-0.5)*6, (rng.Float64()-0.5)*4)
	}

	var links []Link
	for i := 0; i < FieldNodes; i++ {
		a := [3]float32{nodes[i*3], nodes[i*3+1], nodes[i*3+2]}
		for j := i + 1; j < FieldNodes; j++ {
			b := [3]float32{nodes[j*3], nodes[j*3+1], nodes[j*3+2]}
			if distance(a, b) < FieldLinkRadius {
				links = append(links, Link{From: a, To: b})
			}
		}
	}

	return Geometry{Shape: "field", Positions: nodes, Links: links}
}

var matrixLabels = []string{"React", "Node.js", "JS", "TS", "CSS", "HTML", "API", "DB", "UI", "UX"}

// CodeMatrix places labelled blocks that drift upwards in the animation.
func CodeMatrix(rng *rand.Rand) Geometry {
	blocks := make([]Block, 0, MatrixBlocks)
	positions := make(Buffer, 0, MatrixBlocks*3)
	for i := 0; i < MatrixBlocks; i++ {
		pos := [3]float32{
			float32((rng.Float64() - 0.5) * 10),
			float32((rng.Float64() - 0.5) * 8),
			float32((rng.Float64() - 0.5) * 6),
		}
		blocks = append(blocks, Block{
			Position:      pos,
			Label:         matrixLabels[rng.IntN(len(matrixLabels))],
			Speed:         float32(0.5 + rng.Float64()),
			RotationSpeed: float32((rng.Float64() - 0.5) * 0.02),
		})
		positions = append(positions, pos[:]...)
	}
	return Geometry{Shape: "matrix", Positions: positions, Blocks: blocks}
}

func lerp(a, b, f float64) float64 { return a + (b-a)*f }

func distance(a, b [3]float32) float64 {
	dx := float64(a[0] - b[0])
	dy := float64(a[1] - b[1])
	dz := float64(a[2] - b[2])
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// hsl converts hue, saturation and lightness in [0,1] to RGB in [0,1].
func hsl(h, s, l float64) (float64, float64, float64) {
	c := colorful.Hsl(h*360, s, l)
	return c.R, c.G, c.B
}
