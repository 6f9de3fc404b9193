package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// ScaleOptions returns 1-10 select options for intensity style fields.
func ScaleOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], 10)
	for i := 1; i <= 10; i++ {
		opts[i-1] = huh.NewOption(strconv.Itoa(i), i)
	}
	return opts
}

// OptionalInt validates a form input that may be empty or a whole number.
func OptionalInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

// ParseOptionalInt converts an OptionalInt-validated input, 0 when empty.
func ParseOptionalInt(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
