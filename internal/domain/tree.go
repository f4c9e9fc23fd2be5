package domain

// AHUTree is an AHU together with every piece of equipment below it and the
// readings of each node. Child slices are never shared between nodes.
type AHUTree struct {
	AHU      AirHandlingUnit `json:"ahu"`
	Readings []AHUReading    `json:"readings"`
	Filters  []FilterNode    `json:"filters"`
	Fans     []FanNode       `json:"fans"`
	Dampers  []DamperNode    `json:"dampers"`
	VAVs     []VAVNode       `json:"vavs"`
	SAVs     []SAVNode       `json:"savs"`
	HECs     []HECNode       `json:"hecs"`
}

type FilterNode struct {
	Filter
	Readings []FilterReading `json:"readings"`
}

type FanNode struct {
	Fan
	Readings []FanReading `json:"readings"`
}

type DamperNode struct {
	Damper
	Readings []DamperReading `json:"readings"`
}

type VAVNode struct {
	VAV
	Readings     []VAVReading      `json:"readings"`
	HECs         []HECNode         `json:"hecs"`
	Thermafusers []ThermafuserNode `json:"thermafusers"`
}

type SAVNode struct {
	SAV
	Readings     []SAVReading      `json:"readings"`
	HECs         []HECNode         `json:"hecs"`
	Thermafusers []ThermafuserNode `json:"thermafusers"`
}

type HECNode struct {
	HEC
	Readings []HECReading `json:"readings"`
}

type ThermafuserNode struct {
	Thermafuser
	Readings []ThermafuserReading `json:"readings"`
}

// NewAHUTree returns a tree with every child collection allocated.
func NewAHUTree(ahu AirHandlingUnit) *AHUTree {
	return &AHUTree{
		AHU:      ahu,
		Readings: []AHUReading{},
		Filters:  []FilterNode{},
		Fans:     []FanNode{},
		Dampers:  []DamperNode{},
		VAVs:     []VAVNode{},
		SAVs:     []SAVNode{},
		HECs:     []HECNode{},
	}
}
