package credit

import (
	"fmt"

	"contrib-credit/internal/github"
)

// tier pairs a field-presence predicate with its template. Tiers are
// evaluated in order and the first match wins, so the "both present" tier
// must stay ahead of the single-field tiers: a profile with both name and
// twitter satisfies those predicates too.
type tier struct {
	matches func(p *github.Profile) bool
	render  func(p *github.Profile, issueText string) string
}

var tiers = []tier{
	{
		// Name + Twitter
		matches: func(p *github.Profile) bool {
			return p.DisplayName != nil && p.TwitterHandle != nil
		},
		render: func(p *github.Profile, issueText string) string {
			return fmt.Sprintf("Thanks to %s ([@%s](https://x.com/%s)) for %s!",
				*p.DisplayName, *p.TwitterHandle, *p.TwitterHandle, issueText)
		},
	},
	{
		// Twitter only
		matches: func(p *github.Profile) bool {
			return p.TwitterHandle != nil
		},
		render: func(p *github.Profile, issueText string) string {
			return fmt.Sprintf("Thanks to [@%s](https://x.com/%s) for %s!",
				*p.TwitterHandle, *p.TwitterHandle, issueText)
		},
	},
	{
		// Name only
		matches: func(p *github.Profile) bool {
			return p.DisplayName != nil
		},
		render: func(p *github.Profile, issueText string) string {
			return fmt.Sprintf("Thanks to %s (@%s on GitHub) for %s!",
				*p.DisplayName, p.Login, issueText)
		},
	},
	{
		// Login fallback, matches everything
		matches: func(p *github.Profile) bool {
			return true
		},
		render: func(p *github.Profile, issueText string) string {
			return fmt.Sprintf("Thanks to @%s for %s!", p.Login, issueText)
		},
	},
}

// Format renders a changelog credit line for a contributor. It is pure and
// total: same inputs always produce the same non-empty string, and there is
// no failure mode.
func Format(profile *github.Profile, issueNumber *int) string {
	issueText := "the report"
	if issueNumber != nil {
		issueText = fmt.Sprintf("reporting #%d", *issueNumber)
	}

	for _, t := range tiers {
		if t.matches(profile) {
			return t.render(profile, issueText)
		}
	}

	// Unreachable: the last tier matches every profile.
	return fmt.Sprintf("Thanks to @%s for %s!", profile.Login, issueText)
}
