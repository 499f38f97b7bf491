package domain

import (
	"strings"

	"github.com/google/uuid"
)

// MovieFilter holds the optional movie list filters. All supplied
// filters must match for a movie to be included.
type MovieFilter struct {
	FromYear *int
	ToYear   *int
	Title    string
	Genre    string
	ActorID  *uuid.UUID
}

// Empty reports whether no filter is set.
func (f MovieFilter) Empty() bool {
	return f.FromYear == nil && f.ToYear == nil && f.Title == "" && f.Genre == "" && f.ActorID == nil
}

// Matches reports whether the movie satisfies every supplied filter.
func (f MovieFilter) Matches(m *Movie) bool {
	if f.FromYear != nil && m.ReleaseYear < *f.FromYear {
		return false
	}
	if f.ToYear != nil && m.ReleaseYear > *f.ToYear {
		return false
	}
	if f.Title != "" && !strings.Contains(strings.ToLower(m.Title), strings.ToLower(f.Title)) {
		return false
	}
	if f.Genre != "" {
		found := false
		for i := range m.Genres {
			if strings.EqualFold(m.Genres[i].Name, f.Genre) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.ActorID != nil {
		if _, ok := m.FindActor(*f.ActorID); !ok {
			return false
		}
	}
	return true
}
