package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/BanaanKiamanesh/Shilling/internal/ode"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

// Plot renders each requested state component of the trajectory as a
// terminal graph, one per component.
func Plot(traj *ode.Trajectory, components []int) string {
	var sb strings.Builder
	for _, j := range components {
		t0 := traj.Times[0]
		tf, _ := traj.Final()
		graph := asciigraph.Plot(traj.Component(j),
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(fmt.Sprintf("y%d over t in [%g, %g]", j, t0, tf)),
		)
		sb.WriteString(graph)
		sb.WriteString("\n\n")
	}
	return sb.String()
}
