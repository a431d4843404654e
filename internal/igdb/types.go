package igdb

import "errors"

// ErrNotFound marks a search or detail query that returned zero rows.
// It is distinct from transport and auth failures so callers can tell
// "the catalog has no such game" apart from "the catalog was unreachable".
var ErrNotFound = errors.New("igdb: not found")

// Raw API record shapes. Every field the catalog may omit is a
// pointer or slice so presence is decided once at the JSON boundary
// instead of being re-checked throughout normalization.

type apiImage struct {
	URL string `json:"url"`
}

type apiNamed struct {
	Name string `json:"name"`
}

type apiCompany struct {
	Name string `json:"name"`
}

type apiInvolvedCompany struct {
	Company   *apiCompany `json:"company"`
	Developer bool        `json:"developer"`
	Publisher bool        `json:"publisher"`
}

type apiWebsite struct {
	URL      string `json:"url"`
	Category int    `json:"category"`
}

type apiAgeRating struct {
	Category int `json:"category"`
	Rating   int `json:"rating"`
}

type apiLanguage struct {
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
}

type apiLanguageSupport struct {
	Language            *apiLanguage `json:"language"`
	LanguageSupportType *apiNamed    `json:"language_support_type"`
}

type apiGame struct {
	ID                int64                `json:"id"`
	Name              string               `json:"name"`
	Summary           string               `json:"summary"`
	Storyline         string               `json:"storyline"`
	FirstReleaseDate  *int64               `json:"first_release_date"`
	Rating            *float64             `json:"rating"`
	TotalRating       *float64             `json:"total_rating"`
	TotalRatingCount  *int                 `json:"total_rating_count"`
	Cover             *apiImage            `json:"cover"`
	Screenshots       []apiImage           `json:"screenshots"`
	Genres            []apiNamed           `json:"genres"`
	Platforms         []apiNamed           `json:"platforms"`
	Themes            []apiNamed           `json:"themes"`
	GameModes         []apiNamed           `json:"game_modes"`
	AlternativeNames  []apiNamed           `json:"alternative_names"`
	InvolvedCompanies []apiInvolvedCompany `json:"involved_companies"`
	Websites          []apiWebsite         `json:"websites"`
	DLCs              []int64              `json:"dlcs"`
	Expansions        []int64              `json:"expansions"`
	Franchise         *int64               `json:"franchise"`
	Franchises        []int64              `json:"franchises"`
	AgeRatings        []apiAgeRating       `json:"age_ratings"`
	LanguageSupports  []apiLanguageSupport `json:"language_supports"`
	Category          *int                 `json:"category"`
}

type apiTimeToBeat struct {
	Hastily    *int `json:"hastily"`
	Normally   *int `json:"normally"`
	Completely *int `json:"completely"`
	Count      int  `json:"count"`
}

type apiFranchise struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Slug  string  `json:"slug"`
	URL   string  `json:"url"`
	Games []int64 `json:"games"`
}
