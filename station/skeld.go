package station

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	corridorColor = color.RGBA{0x77, 0x77, 0x77, 0xff}
	tableColor    = color.RGBA{0x8b, 0x45, 0x13, 0xff}
	buttonColor   = color.RGBA{0xff, 0x00, 0x00, 0xff}
	crateColor    = color.RGBA{0xc8, 0x96, 0x3c, 0xff}
)

func rgb(hex uint32) color.RGBA {
	return color.RGBA{uint8(hex >> 16), uint8(hex >> 8), uint8(hex), 0xff}
}

func door(side Side, x, z float64) Doorway {
	return Doorway{Side: side, X: x, Z: z, Width: 3}
}

// Skeld returns the station layout: fourteen rooms around the cafeteria
// joined by twelve corridors.
func Skeld() Layout {
	cafeteria := mgl64.Vec2{12.5, 10}
	l := Layout{
		WallHeight:    3,
		WallThickness: 0.2,
		Spawn:         mgl64.Vec3{12.5, 3, 10},
		Rooms: []Room{
			{Name: "Cafeteria", X: 0, Z: 0, Width: 25, Depth: 20, Color: rgb(0xa0a0a0), Doorways: []Doorway{
				door(North, 12.5, 0),  // weapons
				door(East, 25, 10),    // admin
				door(South, 12.5, 20), // storage
				door(West, 0, 10),     // medbay
			}},
			{Name: "Weapons", X: 0, Z: -15, Width: 25, Depth: 10, Color: rgb(0xffcccc), Doorways: []Doorway{
				door(South, 12.5, -5),
			}},
			{Name: "Admin", X: 30, Z: 0, Width: 15, Depth: 15, Color: rgb(0xaaffaa), Doorways: []Doorway{
				door(West, 30, 10),
				door(South, 37.5, 15),
			}},
			{Name: "Storage", X: 0, Z: 25, Width: 25, Depth: 15, Color: rgb(0xbbbbbb), Doorways: []Doorway{
				door(North, 12.5, 25),
				door(East, 25, 32.5),
				door(South, 12.5, 40),
				door(West, 0, 32.5),
			}},
			{Name: "MedBay", X: -20, Z: 0, Width: 15, Depth: 15, Color: rgb(0xb0ddff), Doorways: []Doorway{
				door(East, -5, 10),
			}},
			{Name: "Upper Engine", X: -30, Z: -15, Width: 20, Depth: 15, Color: rgb(0xffccaa), Doorways: []Doorway{
				door(East, -10, -7.5),
				door(South, -20, 0),
			}},
			{Name: "Reactor", X: -45, Z: 10, Width: 15, Depth: 15, Color: rgb(0xff9999), Doorways: []Doorway{
				door(East, -30, 17.5),
			}},
			{Name: "Lower Engine", X: -30, Z: 25, Width: 20, Depth: 15, Color: rgb(0xffccaa), Doorways: []Doorway{
				door(North, -20, 25),
				door(East, -10, 32.5),
			}},
			{Name: "Electrical", X: -15, Z: 25, Width: 10, Depth: 10, Color: rgb(0xffff99), Doorways: []Doorway{
				door(East, -5, 30),
			}},
			{Name: "Communications", X: 30, Z: 20, Width: 15, Depth: 10, Color: rgb(0xffaaff), Doorways: []Doorway{
				door(West, 30, 25),
			}},
			{Name: "Shields", X: 25, Z: 35, Width: 15, Depth: 10, Color: rgb(0xaaaaff), Doorways: []Doorway{
				door(North, 32.5, 35),
			}},
			{Name: "Navigation", X: 50, Z: 10, Width: 15, Depth: 15, Color: rgb(0xddddaa), Doorways: []Doorway{
				door(West, 50, 17.5),
			}},
			{Name: "O2", X: 30, Z: -10, Width: 10, Depth: 10, Color: rgb(0xccffcc), Doorways: []Doorway{
				door(South, 35, 0),
			}},
			{Name: "Security", X: -30, Z: -5, Width: 15, Depth: 10, Color: rgb(0xffaaaa), Doorways: []Doorway{
				door(East, -15, 0),
				door(South, -22.5, 5),
			}},
		},
		Corridors: []Corridor{
			{X: 10, Z: -5, Width: 5, Length: 5},                    // cafeteria - weapons
			{X: 25, Z: 8, Width: 5, Length: 4, Horizontal: true},   // cafeteria - admin
			{X: 10, Z: 20, Width: 5, Length: 5},                    // cafeteria - storage
			{X: -5, Z: 8, Width: 5, Length: 4, Horizontal: true},   // cafeteria - medbay
			{X: -20, Z: -2, Width: 5, Length: 8, Horizontal: true}, // medbay - upper engine
			{X: -30, Z: 0, Width: 5, Length: 10},                   // upper engine - reactor
			{X: -30, Z: 15, Width: 5, Length: 10},                  // reactor - lower engine
			{X: -10, Z: 30, Width: 5, Length: 5, Horizontal: true}, // lower engine - electrical
			{X: 25, Z: 17, Width: 5, Length: 15, Horizontal: true}, // storage - admin
			{X: 45, Z: 10, Width: 5, Length: 7, Horizontal: true},  // admin - navigation
			{X: 37, Z: 15, Width: 5, Length: 10},                   // admin - communications
			{X: 32, Z: 30, Width: 5, Length: 5},                    // communications - shields
		},
		Tables: []Table{
			{X: cafeteria.X(), Z: cafeteria.Y(), Width: 10, Height: 1, Depth: 10},
		},
		Markers: []Marker{
			{
				Name:     "emergency button",
				Position: mgl64.Vec3{cafeteria.X(), 1.25, cafeteria.Y()},
				Half:     mgl64.Vec3{1, 0.25, 1},
				Color:    buttonColor,
			},
		},
		Crates: []Crate{
			{Position: mgl64.Vec3{4, 2, 29}, Size: 1, Mass: 2},
			{Position: mgl64.Vec3{5.5, 3, 29.5}, Size: 1, Mass: 2},
			{Position: mgl64.Vec3{20, 2, 36}, Size: 1.2, Mass: 3},
		},
	}

	// Small tables on the diagonals so no doorway path is blocked.
	for i := 0; i < 4; i++ {
		angle := math.Pi/4 + float64(i)*math.Pi/2
		l.Tables = append(l.Tables, Table{
			X:         cafeteria.X() + 10*math.Sin(angle),
			Z:         cafeteria.Y() + 10*math.Cos(angle),
			Width:     3,
			Height:    0.5,
			Depth:     3,
			Elevation: 0.5,
		})
	}
	return l
}
