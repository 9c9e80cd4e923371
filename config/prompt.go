package config

import "strings"

// PromptOptions holds settings for the interactive prompt.
type PromptOptions struct {
	Format string // prompt format; every "%s" is replaced with the cwd
	Color  bool   // colorize the prompt and failure output
}

// Render returns the prompt for the given cwd
func (o PromptOptions) Render(cwd string) string {
	return strings.ReplaceAll(o.Format, "%s", cwd)
}
