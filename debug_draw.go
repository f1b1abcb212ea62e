package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/milk9111/gridnav/common"
	"github.com/milk9111/gridnav/nav"
	"github.com/milk9111/gridnav/unit"
)

const (
	unitHalfSize   = 0.14 // world units
	facingLineLen  = 0.3
	circleSegments = 20
)

func (g *Game) drawWorld(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	for _, o := range g.world.Spec.Obstacles {
		switch o.Kind {
		case "box":
			g.fillWorldRect(screen, common.Vec2{X: o.X, Y: o.Y}, o.Width, o.Height, colornames.Slategray)
		case "circle":
			g.strokeWorldCircle(screen, common.Vec2{X: o.X, Y: o.Y}, o.Radius, colornames.Slategray)
		}
	}

	g.drawUnit(screen, g.world.Player, colornames.Deepskyblue)
	for _, s := range g.world.Seekers {
		g.drawUnit(screen, s, colornames.Orange)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	nodePx := math.Max(2, g.world.Grid.Radius()*g.camera.Scale()*0.4)
	for _, c := range g.world.Grid.Cells() {
		clr := colornames.Darkseagreen
		if !c.Walkable {
			clr = colornames.Indianred
		}
		sx, sy := g.camera.WorldToScreen(c.Pos)
		ebitenutil.DrawRect(screen, sx-nodePx/2, sy-nodePx/2, nodePx, nodePx, clr)
	}

	if search, ok := g.world.Pathfinder.LastSearch(); ok {
		g.drawPath(screen, search.Path, colornames.Gold)
		g.markCell(screen, search.Source, nodePx*2, colornames.White)
		g.markCell(screen, search.Dest, nodePx*2, colornames.Gold)
	}

	for _, s := range g.world.Seekers {
		rest := s.Remaining()
		if len(rest) == 0 {
			continue
		}
		withStart := append([]*nav.Cell{s.Current()}, rest...)
		g.drawPath(screen, withStart, colornames.Orange)
	}
}

func (g *Game) drawPath(screen *ebiten.Image, path []*nav.Cell, clr color.Color) {
	for i := 1; i < len(path); i++ {
		ax, ay := g.camera.WorldToScreen(path[i-1].Pos)
		bx, by := g.camera.WorldToScreen(path[i].Pos)
		ebitenutil.DrawLine(screen, ax, ay, bx, by, clr)
	}
}

func (g *Game) markCell(screen *ebiten.Image, c *nav.Cell, sizePx float64, clr color.Color) {
	if c == nil {
		return
	}
	sx, sy := g.camera.WorldToScreen(c.Pos)
	ebitenutil.DrawRect(screen, sx-sizePx/2, sy-sizePx/2, sizePx, sizePx, clr)
}

func (g *Game) drawUnit(screen *ebiten.Image, u *unit.Unit, clr color.Color) {
	g.fillWorldRect(screen, u.Pos, unitHalfSize*2, unitHalfSize*2, clr)

	tip := u.Pos.Add(common.Vec2{X: math.Cos(u.Angle), Y: math.Sin(u.Angle)}.Scale(facingLineLen))
	ax, ay := g.camera.WorldToScreen(u.Pos)
	bx, by := g.camera.WorldToScreen(tip)
	ebitenutil.DrawLine(screen, ax, ay, bx, by, colornames.White)
}

func (g *Game) fillWorldRect(screen *ebiten.Image, center common.Vec2, w, h float64, clr color.Color) {
	topLeft := common.Vec2{X: center.X - w/2, Y: center.Y + h/2}
	sx, sy := g.camera.WorldToScreen(topLeft)
	ebitenutil.DrawRect(screen, sx, sy, w*g.camera.Scale(), h*g.camera.Scale(), clr)
}

func (g *Game) strokeWorldCircle(screen *ebiten.Image, center common.Vec2, radius float64, clr color.Color) {
	prev := center.Add(common.Vec2{X: radius})
	for i := 1; i <= circleSegments; i++ {
		th := float64(i) * (2 * math.Pi / circleSegments)
		cur := center.Add(common.Vec2{X: math.Cos(th) * radius, Y: math.Sin(th) * radius})
		ax, ay := g.camera.WorldToScreen(prev)
		bx, by := g.camera.WorldToScreen(cur)
		ebitenutil.DrawLine(screen, ax, ay, bx, by, clr)
		prev = cur
	}
}
