package store

import (
	"context"
	"fmt"

	"github.com/lib/pq"
)

const (
	// similarityThreshold is the minimum number of distinct shared songs
	// for another playlist to count as a neighbor.
	similarityThreshold = 3
	// maxRecommendations caps the playlist recommendation result.
	maxRecommendations = 5
	// topStreamsLimit caps the top-streamed ranking.
	topStreamsLimit = 10
)

// RankedStream is one row of the top-streamed ranking.
type RankedStream struct {
	Position int
	Song     string
	Artist   string
	Streams  int
}

// Recommendation is one song surfaced from a neighboring playlist.
type Recommendation struct {
	SongID     int64
	SongName   string
	AlbumName  string
	ArtistName string
}

// TopStreams ranks all songs by total play count, descending, and returns
// the top ten. Position is assigned after the ordering, so it reflects the
// final rank; ties are broken by the store's grouping order.
func (s *Store) TopStreams(ctx context.Context) ([]RankedStream, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ROW_NUMBER() OVER (ORDER BY COUNT(streams.stream_id) DESC) AS position,
		       song.song_name, artist.artist_name, COUNT(streams.stream_id) AS plays
		FROM streams
		JOIN song ON song.song_id = streams.song_id
		JOIN artist ON artist.id = song.artist_id
		GROUP BY streams.song_id, song.song_name, artist.artist_name
		ORDER BY position ASC
		LIMIT $1
	`, topStreamsLimit)
	if err != nil {
		return nil, fmt.Errorf("select top streams: %w", err)
	}
	defer rows.Close()

	var ranking []RankedStream
	for rows.Next() {
		var r RankedStream
		if err := rows.Scan(&r.Position, &r.Song, &r.Artist, &r.Streams); err != nil {
			return nil, fmt.Errorf("scan top stream: %w", err)
		}
		ranking = append(ranking, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate top streams: %w", err)
	}

	return ranking, nil
}

// RecommendForPlaylist surfaces up to five songs from playlists that share
// at least three distinct songs with the source playlist, excluding songs
// the source already contains. No qualifying neighbor yields an empty
// result, not an error.
func (s *Store) RecommendForPlaylist(ctx context.Context, playlistName string) ([]Recommendation, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	playlistID, err := s.playlistIDByName(ctx, tx, playlistName)
	if err != nil {
		return nil, err
	}

	sourceSongs, err := s.membershipSongIDs(ctx, tx, playlistID)
	if err != nil {
		return nil, err
	}
	if len(sourceSongs) == 0 {
		// An empty playlist has no neighbors by definition.
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit tx: %w", err)
		}
		tx = nil
		return nil, nil
	}

	candidateRows, err := tx.QueryContext(ctx, `
		SELECT playlist_id
		FROM song_playlist
		WHERE song_id = ANY($1) AND playlist_id <> $2
		GROUP BY playlist_id
		HAVING COUNT(DISTINCT song_id) >= $3
	`, pq.Array(sourceSongs), playlistID, similarityThreshold)
	if err != nil {
		return nil, fmt.Errorf("select neighbor playlists: %w", err)
	}
	defer candidateRows.Close()

	var candidates []int64
	for candidateRows.Next() {
		var id int64
		if err := candidateRows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan neighbor playlist: %w", err)
		}
		candidates = append(candidates, id)
	}
	if err := candidateRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate neighbor playlists: %w", err)
	}

	var recs []Recommendation
	if len(candidates) > 0 {
		rows, err := tx.QueryContext(ctx, `
			SELECT DISTINCT song_playlist.song_id, song.song_name, album.album_name, artist.artist_name
			FROM song_playlist
			JOIN song ON song.song_id = song_playlist.song_id
			JOIN album ON album.id = song.album_id
			JOIN artist ON artist.id = song.artist_id
			WHERE song_playlist.playlist_id = ANY($1)
			  AND NOT (song_playlist.song_id = ANY($2))
			LIMIT $3
		`, pq.Array(candidates), pq.Array(sourceSongs), maxRecommendations)
		if err != nil {
			return nil, fmt.Errorf("select recommendations: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var r Recommendation
			if err := rows.Scan(&r.SongID, &r.SongName, &r.AlbumName, &r.ArtistName); err != nil {
				return nil, fmt.Errorf("scan recommendation: %w", err)
			}
			recs = append(recs, r)
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate recommendations: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return recs, nil
}

func (s *Store) membershipSongIDs(ctx context.Context, q queryer, playlistID int64) ([]int64, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT song_id
		FROM song_playlist
		WHERE playlist_id = $1
	`, playlistID)
	if err != nil {
		return nil, fmt.Errorf("select playlist song ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan playlist song id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlist song ids: %w", err)
	}
	return ids, nil
}
