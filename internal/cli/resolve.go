package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveCaseID accepts a full case id or a unique id prefix.
func resolveCaseID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("case ID is required")
	}

	cases, err := app.Cases.List(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, c := range cases {
		if c.ID == input {
			return c.ID, nil
		}
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}

	switch len(matches) {
	case 0:
		// Let the service report the lookup failure.
		return input, nil
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("case ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
