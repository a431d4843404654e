package igdb

import (
	"fmt"
	"strings"
	"time"

	"github.com/playdex/game-curator/internal/domain"
)

const (
	thumbToken     = "t_thumb"
	coverSize      = "t_cover_big"
	screenshotSize = "t_screenshot_big"
)

// Website category codes: 1=official, 13=steam, 15=itch, 16=epicgames, 17=gog
const websiteOfficial = 1

var storeCategories = map[int]bool{
	13: true,
	15: true,
	16: true,
	17: true,
}

// Age rating board codes
const (
	boardESRB = 1
	boardPEGI = 2
)

var esrbCoverURLs = map[int]string{
	6:  "https://www.esrb.org/wp-content/uploads/2019/05/RP.svg",      // Rating Pending
	7:  "https://www.esrb.org/wp-content/uploads/2019/05/EC.svg",      // Early Childhood
	8:  "https://www.esrb.org/wp-content/uploads/2019/05/E.svg",       // Everyone
	9:  "https://www.esrb.org/wp-content/uploads/2019/05/E10plus.svg", // Everyone 10+
	10: "https://www.esrb.org/wp-content/uploads/2019/05/T.svg",       // Teen
	11: "https://www.esrb.org/wp-content/uploads/2019/05/M.svg",       // Mature
	12: "https://www.esrb.org/wp-content/uploads/2019/05/AO.svg",      // Adults Only
}

var pegiCoverURLs = map[int]string{
	1: "https://rating.pegi.info/assets/images/games/age_threshold_icons/3.png",
	2: "https://rating.pegi.info/assets/images/games/age_threshold_icons/7.png",
	3: "https://rating.pegi.info/assets/images/games/age_threshold_icons/12.png",
	4: "https://rating.pegi.info/assets/images/games/age_threshold_icons/16.png",
	5: "https://rating.pegi.info/assets/images/games/age_threshold_icons/18.png",
}

// upgradeImageURL swaps the thumbnail size token for a high-res one
// and forces an https scheme on scheme-relative URLs. Idempotent:
// already-upgraded URLs pass through unchanged.
func upgradeImageURL(raw, size string) string {
	if raw == "" {
		return ""
	}
	u := strings.Replace(raw, thumbToken, size, 1)
	if !strings.HasPrefix(u, "https:") {
		u = "https:" + u
	}
	return u
}

// formatPlaytime renders a duration in seconds as "Xh Ym", or "Ym"
// under an hour. A present zero is "0m"; absence is the caller's
// concern (nil pointer, formats to empty).
func formatPlaytime(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

func formatPlaytimePtr(seconds *int) string {
	if seconds == nil {
		return ""
	}
	return formatPlaytime(*seconds)
}

// releaseDate converts a unix timestamp into a year and a
// "Month Day, Year" display string.
func releaseDate(ts int64) (int, string) {
	t := time.Unix(ts, 0).UTC()
	return t.Year(), t.Format("January 2, 2006")
}

func flattenNames(items []apiNamed) []string {
	if len(items) == 0 {
		return nil
	}
	names := make([]string, 0, len(items))
	for _, it := range items {
		if it.Name != "" {
			names = append(names, it.Name)
		}
	}
	return names
}

// normalizeGame flattens a raw detail record into the display-ready
// shape. Sub-fetches (time-to-beat, add-ons, franchise) are attached
// by the resolver afterwards.
func normalizeGame(g apiGame) *domain.GameRecord {
	rec := &domain.GameRecord{
		ID:        g.ID,
		Name:      g.Name,
		Summary:   g.Summary,
		Storyline: g.Storyline,
		AddOns:    []domain.AddOn{},
	}

	if g.Rating != nil {
		rec.Rating = *g.Rating
	}
	if g.TotalRating != nil {
		rec.TotalRating = *g.TotalRating
	}
	if g.TotalRatingCount != nil {
		rec.TotalRatingCount = *g.TotalRatingCount
	}

	if g.FirstReleaseDate != nil {
		rec.FirstReleaseDate = *g.FirstReleaseDate
		rec.ReleaseYear, rec.FormattedReleaseDate = releaseDate(*g.FirstReleaseDate)
	}

	if g.Cover != nil {
		rec.CoverURL = upgradeImageURL(g.Cover.URL, coverSize)
	}
	for _, shot := range g.Screenshots {
		if shot.URL != "" {
			rec.ScreenshotURLs = append(rec.ScreenshotURLs, upgradeImageURL(shot.URL, screenshotSize))
		}
	}

	rec.GenreNames = flattenNames(g.Genres)
	rec.PlatformNames = flattenNames(g.Platforms)
	rec.ThemeNames = flattenNames(g.Themes)
	rec.GameModeNames = flattenNames(g.GameModes)
	rec.AltNames = flattenNames(g.AlternativeNames)

	for _, ic := range g.InvolvedCompanies {
		if ic.Company == nil || ic.Company.Name == "" {
			continue
		}
		if ic.Developer {
			rec.Developers = append(rec.Developers, ic.Company.Name)
		}
		if ic.Publisher {
			rec.Publishers = append(rec.Publishers, ic.Company.Name)
		}
	}

	rec.OfficialWebsite, rec.Stores = classifyWebsites(g.Websites)
	rec.ESRBRatingCoverURL, rec.PEGIRatingCoverURL = classifyAgeRatings(g.AgeRatings)
	rec.LanguageSupport = groupLanguageSupport(g.LanguageSupports)

	return rec
}

// classifyWebsites picks the official site (category 1, first match
// wins) and collects store links by the fixed category whitelist.
func classifyWebsites(sites []apiWebsite) (official string, stores []string) {
	for _, site := range sites {
		if site.URL == "" {
			continue
		}
		if site.Category == websiteOfficial && official == "" {
			official = site.URL
		}
		if storeCategories[site.Category] {
			stores = append(stores, site.URL)
		}
	}
	return official, stores
}

// classifyAgeRatings maps board-specific rating codes to icon URLs.
// When the catalog returns duplicate rows for a board, the last one
// in source order wins.
func classifyAgeRatings(ratings []apiAgeRating) (esrb, pegi string) {
	for _, r := range ratings {
		switch r.Category {
		case boardESRB:
			if u, ok := esrbCoverURLs[r.Rating]; ok {
				esrb = u
			} else {
				esrb = ""
			}
		case boardPEGI:
			if u, ok := pegiCoverURLs[r.Rating]; ok {
				pegi = u
			} else {
				pegi = ""
			}
		}
	}
	return esrb, pegi
}

func groupLanguageSupport(supports []apiLanguageSupport) map[string][]domain.LanguageInfo {
	if len(supports) == 0 {
		return nil
	}
	grouped := make(map[string][]domain.LanguageInfo)
	for _, ls := range supports {
		if ls.Language == nil || ls.LanguageSupportType == nil {
			continue
		}
		if ls.Language.Name == "" || ls.LanguageSupportType.Name == "" {
			continue
		}
		grouped[ls.LanguageSupportType.Name] = append(grouped[ls.LanguageSupportType.Name], domain.LanguageInfo{
			Name:       ls.Language.Name,
			NativeName: ls.Language.NativeName,
		})
	}
	if len(grouped) == 0 {
		return nil
	}
	return grouped
}

func normalizeTimeToBeat(t apiTimeToBeat) *domain.TimeToBeat {
	return &domain.TimeToBeat{
		Hastily:             t.Hastily,
		Normally:            t.Normally,
		Completely:          t.Completely,
		Count:               t.Count,
		HastilyFormatted:    formatPlaytimePtr(t.Hastily),
		NormallyFormatted:   formatPlaytimePtr(t.Normally),
		CompletelyFormatted: formatPlaytimePtr(t.Completely),
	}
}

// Add-on category codes: 0=main_game, 1=dlc_addon, 2=expansion,
// 3=bundle, 4=standalone_expansion
func addOnType(category *int) string {
	if category == nil {
		return "Add-on"
	}
	if *category == 2 || *category == 4 {
		return "Expansion"
	}
	return "DLC"
}

func normalizeAddOn(g apiGame) domain.AddOn {
	addon := domain.AddOn{
		ID:      g.ID,
		Name:    g.Name,
		Summary: g.Summary,
		Type:    addOnType(g.Category),
	}
	if g.Cover != nil {
		addon.CoverURL = upgradeImageURL(g.Cover.URL, coverSize)
	}
	if g.FirstReleaseDate != nil {
		addon.FirstReleaseDate = *g.FirstReleaseDate
		addon.ReleaseYear, addon.FormattedReleaseDate = releaseDate(*g.FirstReleaseDate)
	}
	_, addon.Stores = classifyWebsites(g.Websites)
	return addon
}

func normalizeFranchiseGame(g apiGame) domain.FranchiseGame {
	fg := domain.FranchiseGame{
		ID:   g.ID,
		Name: g.Name,
		Type: "Main Game",
	}
	if g.Cover != nil {
		fg.CoverURL = upgradeImageURL(g.Cover.URL, coverSize)
	}
	if g.FirstReleaseDate != nil {
		fg.FirstReleaseDate = *g.FirstReleaseDate
		fg.ReleaseYear, fg.FormattedReleaseDate = releaseDate(*g.FirstReleaseDate)
	}
	if g.Rating != nil {
		fg.Rating = *g.Rating
	}
	if g.TotalRating != nil {
		fg.TotalRating = *g.TotalRating
	}
	return fg
}
