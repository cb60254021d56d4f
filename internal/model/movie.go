package model

// Movie represents a row in the `movies` table.  Movies are keyed by
// their IMDB identifier and are immutable after creation.
//
// Fields:
//  ImdbKey        – unique IMDB key (primary key, e.g. "tt0111161").
//  Title          – movie title.
//  ProductionYear – year the movie was produced.
type Movie struct {
    ImdbKey        string `json:"imdbKey"`        // movies.imdb_key
    Title          string `json:"title"`          // movies.movie_title
    ProductionYear uint32 `json:"year"`           // movies.production_year
}

// MovieFilter carries the optional criteria accepted by movie listing.
// Zero values mean the criterion is not applied.
type MovieFilter struct {
    Title   string // exact title match when non-empty
    MinYear uint32 // minimum production year when non-zero
}
