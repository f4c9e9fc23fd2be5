package domain

import "fmt"

// DataPoint maps a control-system point path to descriptive metadata. It has
// no relationship to the equipment tree.
type DataPoint struct {
	Path           string  `db:"Path" json:"path"`
	Server         *string `db:"Server" json:"server,omitempty"`
	Location       *string `db:"Location" json:"location,omitempty"`
	Branch         *string `db:"Branch" json:"branch,omitempty"`
	SubBranch      *string `db:"SubBranch" json:"sub_branch,omitempty"`
	ControlProgram *string `db:"ControlProgram" json:"control_program,omitempty"`
	Point          *string `db:"Point" json:"point,omitempty"`
	Zone           *string `db:"Zone" json:"zone,omitempty"`
}

func (d DataPoint) String() string {
	return fmt.Sprintf("<DataPoint(path = '%s', server = '%s', location = '%s', branch = '%s', subBranch = '%s', controlProgram = '%s', point = '%s', zone = '%s')>",
		d.Path, deref(d.Server), deref(d.Location), deref(d.Branch), deref(d.SubBranch),
		deref(d.ControlProgram), deref(d.Point), deref(d.Zone))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
