package descriptor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxPorts is the largest number of ports accepted per protocol.
const MaxPorts = 10

// ParsePortList parses a comma-separated port list ("80, 443"). An empty
// string yields an empty list.
func ParsePortList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	ports := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%q is not a port number", strings.TrimSpace(part))
		}
		ports = append(ports, n)
	}
	return ports, ValidatePorts(ports)
}

// ValidatePorts enforces the port list bounds: at most MaxPorts entries,
// each greater than 0 and at most 65536.
func ValidatePorts(ports []int) error {
	if len(ports) > MaxPorts {
		return fmt.Errorf("at most %d ports may be exposed", MaxPorts)
	}
	for _, p := range ports {
		if p <= 0 || p > 65536 {
			return errors.New("ports must be between 1 and 65536")
		}
	}
	return nil
}
