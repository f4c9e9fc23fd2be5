package domain

import "fmt"

// ParentKind names which table an HEC or Thermafuser hangs off.
type ParentKind string

const (
	ParentNone ParentKind = ""
	ParentAHU  ParentKind = "ahu"
	ParentVAV  ParentKind = "vav"
	ParentSAV  ParentKind = "sav"
)

// CoilParent is the owner of an HEC. The zero value means unattached.
// Values are built with CoilOnAHU, CoilOnVAV or CoilOnSAV, so at most one
// parent key can ever be set.
type CoilParent struct {
	kind ParentKind
	id   int64
}

func CoilOnAHU(ahuNumber int64) CoilParent { return CoilParent{kind: ParentAHU, id: ahuNumber} }
func CoilOnVAV(vavID int64) CoilParent     { return CoilParent{kind: ParentVAV, id: vavID} }
func CoilOnSAV(savID int64) CoilParent     { return CoilParent{kind: ParentSAV, id: savID} }

func (p CoilParent) Kind() ParentKind { return p.kind }
func (p CoilParent) ID() int64        { return p.id }
func (p CoilParent) IsZero() bool     { return p.kind == ParentNone }

func (p CoilParent) String() string { return parentString(p.kind, p.id) }

// TerminalParent is the owner of a Thermafuser: a VAV, a SAV or nothing.
type TerminalParent struct {
	kind ParentKind
	id   int64
}

func TerminalOnVAV(vavID int64) TerminalParent { return TerminalParent{kind: ParentVAV, id: vavID} }
func TerminalOnSAV(savID int64) TerminalParent { return TerminalParent{kind: ParentSAV, id: savID} }

func (p TerminalParent) Kind() ParentKind { return p.kind }
func (p TerminalParent) ID() int64        { return p.id }
func (p TerminalParent) IsZero() bool     { return p.kind == ParentNone }

func (p TerminalParent) String() string { return parentString(p.kind, p.id) }

func parentString(kind ParentKind, id int64) string {
	if kind == ParentNone {
		return "none"
	}
	return fmt.Sprintf("%s:%d", kind, id)
}
