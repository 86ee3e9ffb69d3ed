package input

import "github.com/lixenwraith/baebae/parameter"

// InputMode selects which binding set the machine consults
type InputMode uint8

const (
	ModeNormal InputMode = iota
	ModeIdentifier
)

func (m InputMode) String() string {
	if m == ModeIdentifier {
		return "identifier"
	}
	return "normal"
}

// IdentifierLength is the digit count of a YYYYMMDD identifier
const IdentifierLength = parameter.IdentifierDigits
