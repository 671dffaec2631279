package interfaces

import "context"

type Generator interface {
	// Generate sends prompt plus prior turn texts (oldest first) to the
	// language model and returns its reply text.
	Generate(ctx context.Context, prompt string, history []string) (string, error)
}
