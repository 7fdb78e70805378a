package github

// Profile is the validated subset of a GitHub user's public profile relevant
// to credit formatting. Optional fields are pointers and are either a
// non-empty value or nil, never an empty string standing in for absent.
type Profile struct {
	Login           string  `json:"login"`
	DisplayName     *string `json:"display_name,omitempty"`
	TwitterHandle   *string `json:"twitter_handle,omitempty"`
	BlogURL         *string `json:"blog_url,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	AvatarURL       string  `json:"avatar_url"`
	ProfileURL      string  `json:"profile_url"`
	PublicRepoCount *int    `json:"public_repo_count,omitempty"`
	FollowerCount   *int    `json:"follower_count,omitempty"`
}

// wireProfile mirrors the GitHub REST /users/:login payload. Everything is a
// pointer so a missing key, an explicit null, and GitHub's habit of sending
// "" for unset fields like blog can all be normalized to absent.
type wireProfile struct {
	Login           *string `json:"login"`
	Name            *string `json:"name"`
	TwitterUsername *string `json:"twitter_username"`
	Blog            *string `json:"blog"`
	Bio             *string `json:"bio"`
	AvatarURL       *string `json:"avatar_url"`
	HTMLURL         *string `json:"html_url"`
	PublicRepos     *int    `json:"public_repos"`
	Followers       *int    `json:"followers"`
}

// optString collapses nil and "" to absent
func optString(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
