package volume

import (
	"fmt"
	"strings"
)

// Kind discriminates layer types.
type Kind int

const (
	KindImage Kind = iota
	KindLabels
	KindPoints
)

var kindNames = [...]string{
	KindImage:  "image",
	KindLabels: "labels",
	KindPoints: "points",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind converts a kind name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown layer kind %q", s)
}

// ParseKinds converts a list of kind names.
func ParseKinds(names []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(names))
	for _, name := range names {
		k, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
