package components

import (
	"github.com/automoto/skeld/ui"
	"github.com/yohamta/donburi"
)

type OverlayData struct {
	Panel *ui.DebugPanel
}

var Overlay = donburi.NewComponentType[OverlayData]()
