package inventory

// ArmorSlot identifies a cosmetic armor slot carried by a class build.
type ArmorSlot string

const (
	SlotHelm   ArmorSlot = "Helm"
	SlotTorso  ArmorSlot = "Torso"
	SlotWrists ArmorSlot = "Wrists"
	SlotLegs   ArmorSlot = "Legs"
)

// ArmorSlots lists the armor slots in display order.
var ArmorSlots = []ArmorSlot{SlotHelm, SlotTorso, SlotWrists, SlotLegs}

// Equipment holds the hands plus the named armor pieces. Armor is display-only;
// defense comes from shields.
type Equipment struct {
	Hands *Loadout
	Armor map[ArmorSlot]string
}

// NewEquipment returns Equipment with an empty loadout and no armor.
//
// Postcondition: Hands and Armor are non-nil.
func NewEquipment() *Equipment {
	return &Equipment{
		Hands: NewLoadout(),
		Armor: make(map[ArmorSlot]string),
	}
}
