package igdb

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/playdex/game-curator/internal/domain"
	"github.com/rs/zerolog/log"
)

const (
	maxAddOns         = 15
	maxFranchiseGames = 20
	similarWorkers    = 3
)

// Resolver turns an ordered candidate title list into a Recommendation.
type Resolver struct {
	client *Client
}

// NewResolver creates a resolver backed by the given client.
func NewResolver(client *Client) *Resolver {
	return &Resolver{client: client}
}

// Resolve resolves the first title to the main game and the rest to
// similar games. An empty input yields an empty result with no network
// activity. Titles that fail to resolve are dropped silently; order
// among the surviving similar games follows the input order. No error
// ever crosses this boundary.
func (r *Resolver) Resolve(ctx context.Context, titles []string) domain.Recommendation {
	rec := domain.Recommendation{SimilarGames: []domain.GameRecord{}}
	if len(titles) == 0 {
		return rec
	}

	var wg sync.WaitGroup

	// The main title shares nothing with the similar batch except the
	// client's token slot, so it can run alongside it.
	wg.Add(1)
	go func() {
		defer wg.Done()
		game, err := r.resolveTitle(ctx, titles[0])
		if err != nil {
			log.Warn().Err(err).Str("title", titles[0]).Msg("failed to resolve main game")
			return
		}
		rec.MainGame = game
	}()

	similar := make([]*domain.GameRecord, len(titles)-1)
	sem := make(chan struct{}, similarWorkers)
	for i, title := range titles[1:] {
		wg.Add(1)
		go func(i int, title string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			game, err := r.resolveTitle(ctx, title)
			if err != nil {
				log.Debug().Err(err).Str("title", title).Msg("dropping unresolved similar game")
				return
			}
			similar[i] = game
		}(i, title)
	}

	wg.Wait()

	for _, game := range similar {
		if game != nil {
			rec.SimilarGames = append(rec.SimilarGames, *game)
		}
	}

	return rec
}

// resolveTitle runs the per-title pipeline: search, detail fetch,
// normalization, then best-effort enrichment. Enrichment failures
// null the affected field only; search/detail failures fail the title.
func (r *Resolver) resolveTitle(ctx context.Context, title string) (*domain.GameRecord, error) {
	var hits []apiGame
	search := fmt.Sprintf("search %q; fields name,id; limit 1;", title)
	if err := r.client.Query(ctx, "games", search, &hits); err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, fmt.Errorf("search %q: %w", title, ErrNotFound)
	}

	gameID := hits[0].ID

	var details []apiGame
	if err := r.client.Query(ctx, "games", detailQuery(gameID), &details); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, fmt.Errorf("detail %d: %w", gameID, ErrNotFound)
	}

	game := details[0]
	rec := normalizeGame(game)

	if ttb, err := r.fetchTimeToBeat(ctx, gameID); err == nil {
		rec.TimeToBeat = ttb
	} else {
		log.Debug().Err(err).Int64("game_id", gameID).Msg("no time-to-beat data")
	}

	addOnIDs := append(append([]int64{}, game.DLCs...), game.Expansions...)
	if len(addOnIDs) > 0 {
		if addOns, err := r.fetchAddOns(ctx, addOnIDs); err == nil {
			rec.AddOns = addOns
		} else {
			log.Debug().Err(err).Int64("game_id", gameID).Msg("failed to fetch add-ons")
		}
	}

	var franchiseID int64
	if game.Franchise != nil {
		franchiseID = *game.Franchise
	} else if len(game.Franchises) > 0 {
		franchiseID = game.Franchises[0]
	}
	if franchiseID != 0 {
		if franchise, err := r.fetchFranchise(ctx, franchiseID); err == nil {
			rec.Franchise = franchise
		} else {
			log.Debug().Err(err).Int64("franchise_id", franchiseID).Msg("failed to fetch franchise")
		}
	}

	return rec, nil
}

func detailQuery(id int64) string {
	return fmt.Sprintf("where id = %d; "+
		"fields name,summary,storyline,first_release_date,rating,"+
		"cover.url,screenshots.url,genres.name,platforms.name,involved_companies.company.name,"+
		"involved_companies.developer,involved_companies.publisher,"+
		"game_modes.name,themes.name,total_rating,total_rating_count,websites.url,websites.category,"+
		"alternative_names.name,dlcs,expansions,franchise,franchises,age_ratings.rating,age_ratings.category,"+
		"language_supports.language.name,language_supports.language.native_name,language_supports.language_support_type.name; "+
		"limit 1;", id)
}

func (r *Resolver) fetchTimeToBeat(ctx context.Context, gameID int64) (*domain.TimeToBeat, error) {
	var rows []apiTimeToBeat
	query := fmt.Sprintf("where game_id = %d; fields hastily, normally, completely, count; limit 1;", gameID)
	if err := r.client.Query(ctx, "game_time_to_beats", query, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return normalizeTimeToBeat(rows[0]), nil
}

// fetchAddOns resolves DLC/expansion ids in one batched query, capped
// to keep the request small.
func (r *Resolver) fetchAddOns(ctx context.Context, ids []int64) ([]domain.AddOn, error) {
	if len(ids) > maxAddOns {
		ids = ids[:maxAddOns]
	}

	var rows []apiGame
	query := fmt.Sprintf("where id = (%s); "+
		"fields name,summary,cover.url,first_release_date,websites.url,websites.category,category; ",
		joinIDs(ids))
	if err := r.client.Query(ctx, "games", query, &rows); err != nil {
		return nil, err
	}

	addOns := make([]domain.AddOn, 0, len(rows))
	for _, row := range rows {
		addOns = append(addOns, normalizeAddOn(row))
	}
	return addOns, nil
}

// fetchFranchise loads the franchise record then its member games,
// main entries only, release order ascending.
func (r *Resolver) fetchFranchise(ctx context.Context, franchiseID int64) (*domain.Franchise, error) {
	var franchises []apiFranchise
	query := fmt.Sprintf("where id = %d; fields name,slug,url,games;", franchiseID)
	if err := r.client.Query(ctx, "franchises", query, &franchises); err != nil {
		return nil, err
	}
	if len(franchises) == 0 {
		return nil, ErrNotFound
	}

	raw := franchises[0]
	franchise := &domain.Franchise{
		ID:    raw.ID,
		Name:  raw.Name,
		Slug:  raw.Slug,
		URL:   raw.URL,
		Games: []domain.FranchiseGame{},
	}

	if len(raw.Games) == 0 {
		return franchise, nil
	}

	ids := raw.Games
	if len(ids) > maxFranchiseGames {
		ids = ids[:maxFranchiseGames]
	}

	// version_parent = null drops editions and variants of member games
	var rows []apiGame
	gamesQuery := fmt.Sprintf("where id = (%s) & category = 0 & version_parent = null; "+
		"fields name,cover.url,first_release_date,rating,total_rating,category; "+
		"sort first_release_date asc;", joinIDs(ids))
	if err := r.client.Query(ctx, "games", gamesQuery, &rows); err != nil {
		log.Debug().Err(err).Int64("franchise_id", franchiseID).Msg("failed to fetch franchise games")
		return franchise, nil
	}

	// The API is asked to sort, but re-sort locally in case it does
	// not: stable, ascending, missing timestamps first.
	sort.SliceStable(rows, func(i, j int) bool {
		return releaseTimestamp(rows[i]) < releaseTimestamp(rows[j])
	})

	for _, row := range rows {
		franchise.Games = append(franchise.Games, normalizeFranchiseGame(row))
	}

	return franchise, nil
}

func releaseTimestamp(g apiGame) int64 {
	if g.FirstReleaseDate == nil {
		return 0
	}
	return *g.FirstReleaseDate
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
