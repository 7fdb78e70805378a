package credit

import (
	"strings"
	"testing"

	"contrib-credit/internal/github"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func baseProfile() *github.Profile {
	return &github.Profile{
		Login:      "ada_login",
		AvatarURL:  "https://avatars.example.com/ada",
		ProfileURL: "https://github.com/ada_login",
	}
}

func TestFormat_NameAndTwitter(t *testing.T) {
	profile := baseProfile()
	profile.DisplayName = strPtr("Ada")
	profile.TwitterHandle = strPtr("ada")

	got := Format(profile, intPtr(42))
	want := "Thanks to Ada ([@ada](https://x.com/ada)) for reporting #42!"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormat_TwitterOnly(t *testing.T) {
	profile := baseProfile()
	profile.TwitterHandle = strPtr("ada")

	got := Format(profile, nil)
	want := "Thanks to [@ada](https://x.com/ada) for the report!"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormat_NameOnly(t *testing.T) {
	profile := baseProfile()
	profile.DisplayName = strPtr("Ada")

	got := Format(profile, intPtr(7))
	want := "Thanks to Ada (@ada_login on GitHub) for reporting #7!"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormat_LoginFallback(t *testing.T) {
	profile := baseProfile()

	got := Format(profile, nil)
	want := "Thanks to @ada_login for the report!"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

// A profile with both fields must hit the combined tier, not either
// single-field tier. Guards the tier ordering.
func TestFormat_BothFieldsPreferCombinedTier(t *testing.T) {
	profile := baseProfile()
	profile.DisplayName = strPtr("Ada")
	profile.TwitterHandle = strPtr("ada")

	got := Format(profile, nil)
	if !strings.Contains(got, "Ada (") || !strings.Contains(got, "[@ada]") {
		t.Errorf("expected combined name+twitter rendering, got %q", got)
	}
}

func TestFormat_Total(t *testing.T) {
	names := []*string{nil, strPtr("Ada")}
	twitters := []*string{nil, strPtr("ada")}
	issues := []*int{nil, intPtr(1)}

	for _, name := range names {
		for _, twitter := range twitters {
			for _, issue := range issues {
				profile := baseProfile()
				profile.DisplayName = name
				profile.TwitterHandle = twitter

				got := Format(profile, issue)
				if got == "" {
					t.Errorf("Format() returned empty string for name=%v twitter=%v issue=%v",
						name, twitter, issue)
				}
				if again := Format(profile, issue); again != got {
					t.Errorf("Format() not deterministic: %q vs %q", got, again)
				}
			}
		}
	}
}

func TestFormat_IssueText(t *testing.T) {
	profile := baseProfile()

	withIssue := Format(profile, intPtr(99))
	if !strings.Contains(withIssue, "reporting #99") {
		t.Errorf("expected issue text in %q", withIssue)
	}

	withoutIssue := Format(profile, nil)
	if !strings.Contains(withoutIssue, "the report") {
		t.Errorf("expected generic report text in %q", withoutIssue)
	}
}
