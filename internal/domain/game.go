package domain

// GameRecord is the flat, display-ready shape a resolved title is
// normalized into. Absent optional values are zero/nil and omitted
// from JSON; AddOns is always present (possibly empty).
type GameRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	Summary              string  `json:"summary,omitempty"`
	Storyline            string  `json:"storyline,omitempty"`
	FirstReleaseDate     int64   `json:"first_release_date,omitempty"`
	ReleaseYear          int     `json:"release_year,omitempty"`
	FormattedReleaseDate string  `json:"formatted_release_date,omitempty"`
	Rating               float64 `json:"rating,omitempty"`
	TotalRating          float64 `json:"total_rating,omitempty"`
	TotalRatingCount     int     `json:"total_rating_count,omitempty"`

	CoverURL       string   `json:"cover_url,omitempty"`
	ScreenshotURLs []string `json:"screenshot_urls,omitempty"`

	GenreNames    []string `json:"genre_names,omitempty"`
	PlatformNames []string `json:"platform_names,omitempty"`
	ThemeNames    []string `json:"theme_names,omitempty"`
	GameModeNames []string `json:"game_mode_names,omitempty"`
	AltNames      []string `json:"alt_names,omitempty"`

	Developers []string `json:"developers,omitempty"`
	Publishers []string `json:"publishers,omitempty"`

	OfficialWebsite string   `json:"official_website,omitempty"`
	Stores          []string `json:"stores,omitempty"`

	ESRBRatingCoverURL string `json:"esrb_rating_cover_url,omitempty"`
	PEGIRatingCoverURL string `json:"pegi_rating_cover_url,omitempty"`

	LanguageSupport map[string][]LanguageInfo `json:"language_support,omitempty"`

	TimeToBeat *TimeToBeat `json:"time_to_beat,omitempty"`
	AddOns     []AddOn     `json:"add_on_details"`
	Franchise  *Franchise  `json:"franchise_details,omitempty"`
}

// LanguageInfo is one supported language under a support type
// ("Audio", "Subtitles", "Interface").
type LanguageInfo struct {
	Name       string `json:"name"`
	NativeName string `json:"native_name,omitempty"`
}

// TimeToBeat holds completion durations in seconds plus formatted
// strings. A nil duration means the catalog has no data for that
// speed; a present zero formats to "0m".
type TimeToBeat struct {
	Hastily             *int   `json:"hastily,omitempty"`
	Normally            *int   `json:"normally,omitempty"`
	Completely          *int   `json:"completely,omitempty"`
	Count               int    `json:"count,omitempty"`
	HastilyFormatted    string `json:"hastily_formatted,omitempty"`
	NormallyFormatted   string `json:"normally_formatted,omitempty"`
	CompletelyFormatted string `json:"completely_formatted,omitempty"`
}

// AddOn is a DLC or expansion belonging to a game.
type AddOn struct {
	ID                   int64    `json:"id"`
	Name                 string   `json:"name"`
	Summary              string   `json:"summary,omitempty"`
	Type                 string   `json:"type"`
	CoverURL             string   `json:"cover_url,omitempty"`
	FirstReleaseDate     int64    `json:"first_release_date,omitempty"`
	ReleaseYear          int      `json:"release_year,omitempty"`
	FormattedReleaseDate string   `json:"formatted_release_date,omitempty"`
	Stores               []string `json:"stores,omitempty"`
}

// Franchise groups a game's franchise siblings, main entries only,
// release order ascending.
type Franchise struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Slug  string          `json:"slug,omitempty"`
	URL   string          `json:"url,omitempty"`
	Games []FranchiseGame `json:"games_details"`
}

// FranchiseGame is a sibling entry within a franchise.
type FranchiseGame struct {
	ID                   int64   `json:"id"`
	Name                 string  `json:"name"`
	Type                 string  `json:"type"`
	CoverURL             string  `json:"cover_url,omitempty"`
	FirstReleaseDate     int64   `json:"first_release_date,omitempty"`
	ReleaseYear          int     `json:"release_year,omitempty"`
	FormattedReleaseDate string  `json:"formatted_release_date,omitempty"`
	Rating               float64 `json:"rating,omitempty"`
	TotalRating          float64 `json:"total_rating,omitempty"`
}

// Recommendation is the result of resolving a candidate title list.
// A nil MainGame means the top candidate could not be resolved;
// SimilarGames silently omits titles that failed to resolve.
type Recommendation struct {
	MainGame     *GameRecord  `json:"main_game"`
	SimilarGames []GameRecord `json:"similar_games"`
}

// RecommendRequest is the inbound recommendation query.
type RecommendRequest struct {
	Prompt string `json:"prompt" validate:"required,min=3,max=2000"`
	Count  int    `json:"count" validate:"omitempty,gte=1,lte=10"`
}
