package physics

// Material names used by the station and the player.
const (
	MaterialDefault = "default"
	MaterialPlayer  = "player"
	MaterialWall    = "wall"
	MaterialFloor   = "floor"
	MaterialObject  = "object"
)

// ContactMaterial describes how two materials behave on contact.
type ContactMaterial struct {
	A, B        string
	Friction    float64
	Restitution float64
}

type materialPair struct {
	a, b string
}

func pairKey(a, b string) materialPair {
	if a > b {
		a, b = b, a
	}
	return materialPair{a, b}
}

// AddContactMaterial registers or replaces the pairing of cm.A and cm.B.
func (w *World) AddContactMaterial(cm ContactMaterial) {
	w.contacts[pairKey(cm.A, cm.B)] = cm
}

// ContactMaterialFor returns the pairing for two materials, falling back
// to the world default.
func (w *World) ContactMaterialFor(a, b string) ContactMaterial {
	if cm, ok := w.contacts[pairKey(a, b)]; ok {
		return cm
	}
	return w.defaultContact
}
