// Package render is the ebiten frontend: it reads the keyboard, drives
// the director once per frame and projects the simulation onto the
// screen. The simulation core never imports this package.
package render

import (
	"fmt"
	"image/color"

	"github.com/younwookim/skylands/internal/domain/entity"
)

// Style is the renderable model this frontend understands. The level
// manager stores it as an opaque entity.Model and hands it back at draw
// time.
type Style struct {
	Shape entity.PlaceholderShape
	Color color.RGBA
	// Size scales the projected footprint relative to the object's
	// transform scale.
	Size float64
}

// Assets maps category/type tags to draw styles. Unknown tags return an
// error so the level manager falls back to placeholder geometry.
type Assets struct {
	styles map[string]Style
}

// NewAssets returns the built-in style catalog.
func NewAssets() *Assets {
	return &Assets{styles: map[string]Style{
		"platform/grass":          {entity.ShapeBox, color.RGBA{90, 180, 90, 255}, 1.0},
		"platform/stone":          {entity.ShapeBox, color.RGBA{130, 130, 140, 255}, 1.0},
		"platform/wood":           {entity.ShapeBox, color.RGBA{150, 110, 70, 255}, 1.0},
		"platform/cloud":          {entity.ShapeBox, color.RGBA{235, 235, 245, 255}, 1.0},
		"collectible/coin-gold":   {entity.ShapeSphere, color.RGBA{255, 215, 0, 255}, 0.5},
		"collectible/coin-silver": {entity.ShapeSphere, color.RGBA{192, 192, 192, 255}, 0.5},
		"collectible/coin-bronze": {entity.ShapeSphere, color.RGBA{205, 127, 50, 255}, 0.5},
		"collectible/heart":       {entity.ShapeSphere, color.RGBA{235, 80, 120, 255}, 0.6},
		"collectible/jewel":       {entity.ShapeCone, color.RGBA{100, 220, 220, 255}, 0.6},
		"collectible/key":         {entity.ShapeCone, color.RGBA{240, 200, 60, 255}, 0.5},
		"hazard/spikes":           {entity.ShapeCone, color.RGBA{200, 50, 50, 255}, 0.9},
		"hazard/lava":             {entity.ShapeBox, color.RGBA{230, 90, 30, 255}, 1.0},
		"hazard/fire":             {entity.ShapeCone, color.RGBA{240, 140, 40, 255}, 0.9},
		"interactive/flag":        {entity.ShapeCone, color.RGBA{240, 240, 240, 255}, 1.2},
		"interactive/finish":      {entity.ShapeCone, color.RGBA{240, 240, 240, 255}, 1.2},
		"interactive/checkpoint":  {entity.ShapeCone, color.RGBA{120, 200, 240, 255}, 1.0},
		"decoration/tree":         {entity.ShapeCone, color.RGBA{50, 140, 60, 255}, 1.5},
		"decoration/rock":         {entity.ShapeBox, color.RGBA{110, 105, 100, 255}, 1.0},
		"decoration/bush":         {entity.ShapeSphere, color.RGBA{70, 160, 80, 255}, 0.8},
		"decoration/cloud":        {entity.ShapeSphere, color.RGBA{240, 240, 250, 200}, 1.8},
	}}
}

// Load implements level.AssetProvider.
func (a *Assets) Load(category entity.Category, typeTag string) (entity.Model, error) {
	key := fmt.Sprintf("%s/%s", category, typeTag)
	style, ok := a.styles[key]
	if !ok {
		return nil, fmt.Errorf("no style for %s", key)
	}
	return style, nil
}
