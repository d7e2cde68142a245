package mnemonic

// DestinationWidth is the number of bits of an encoded destination.
const DestinationWidth = 3

// Destination is a set of store targets, the value is the encoded A D M flag triple.
type Destination uint16

// Store target flags.
const (
	NoDestination Destination = 0b000
	DestM         Destination = 0b001
	DestD         Destination = 0b010
	DestA         Destination = 0b100
)

var destinations = map[string]Destination{
	"M":   DestM,
	"D":   DestD,
	"MD":  DestD | DestM,
	"A":   DestA,
	"AM":  DestA | DestM,
	"AD":  DestA | DestD,
	"AMD": DestA | DestD | DestM,
}

var destinationNames = map[Destination]string{}

func init() {
	for name, dest := range destinations {
		destinationNames[dest] = name
	}
}

// ParseDestination parses the given text as a destination mnemonic.
// An empty text is not a destination, callers use NoDestination for it.
func ParseDestination(s string) (Destination, error) {
	dest, ok := destinations[s]
	if !ok {
		return NoDestination, &MnemonicError{Field: FieldDestination, Token: s}
	}
	return dest, nil
}

// DestinationBits returns the 3 bit pattern of the given destination mnemonic.
func DestinationBits(s string) (string, error) {
	dest, err := ParseDestination(s)
	if err != nil {
		return "", err
	}
	return formatBits(dest.Bits(), DestinationWidth), nil
}

// Bits returns the encoded destination field.
func (d Destination) Bits() uint16 {
	return uint16(d) & 0b111
}

// Has returns whether all store targets of other are part of the destination.
func (d Destination) Has(other Destination) bool {
	return d&other == other
}

// String returns the mnemonic of the destination, or an empty string for NoDestination.
func (d Destination) String() string {
	return destinationNames[d]
}
