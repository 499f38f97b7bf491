package domain

import (
	"time"

	"github.com/google/uuid"
)

// Actor describes a performer. The same shape is used for the
// standalone actors table and for the copies embedded inside movies.
type Actor struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string    `gorm:"not null"             json:"name"`
	Surname string    `gorm:"not null"             json:"surname"`
	Age     int       `gorm:"not null"             json:"age"`
	Country string    `gorm:"not null"             json:"country"`
}

// TableName sets the standalone actors table name.
func (Actor) TableName() string {
	return "actors"
}

// Genre describes a movie category. The standalone genres table
// enforces unique names; embedded copies carry no such constraint.
type Genre struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
}

// TableName sets the standalone genres table name.
func (Genre) TableName() string {
	return "genres"
}

// Movie is the catalog aggregate. Actors and Genres are stored as JSON
// documents inside the movie row: they are owned copies, never
// references into the standalone tables, and have no query path of
// their own.
type Movie struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null;index"       json:"title"`
	Director    string    `gorm:"not null"             json:"director"`
	ReleaseYear int       `gorm:"not null;index"       json:"releaseYear"`
	Actors      []Actor   `gorm:"serializer:json"      json:"actors"`
	Genres      []Genre   `gorm:"serializer:json"      json:"genres"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName sets the movies table name.
func (Movie) TableName() string {
	return "movies"
}

// EnsureChildIDs assigns identifiers to embedded entries that lack one.
func (m *Movie) EnsureChildIDs() {
	for i := range m.Actors {
		if m.Actors[i].ID == uuid.Nil {
			m.Actors[i].ID = uuid.New()
		}
	}
	for i := range m.Genres {
		if m.Genres[i].ID == uuid.Nil {
			m.Genres[i].ID = uuid.New()
		}
	}
}

// FindActor returns a pointer to the embedded actor with the given ID.
func (m *Movie) FindActor(id uuid.UUID) (*Actor, bool) {
	for i := range m.Actors {
		if m.Actors[i].ID == id {
			return &m.Actors[i], true
		}
	}
	return nil, false
}

// RemoveActor removes the embedded actor with the given ID, keeping
// the order of the remaining entries.
func (m *Movie) RemoveActor(id uuid.UUID) bool {
	for i := range m.Actors {
		if m.Actors[i].ID == id {
			m.Actors = append(m.Actors[:i], m.Actors[i+1:]...)
			return true
		}
	}
	return false
}

// FindGenre returns a pointer to the embedded genre with the given ID.
func (m *Movie) FindGenre(id uuid.UUID) (*Genre, bool) {
	for i := range m.Genres {
		if m.Genres[i].ID == id {
			return &m.Genres[i], true
		}
	}
	return nil, false
}

// RemoveGenre removes the embedded genre with the given ID, keeping
// the order of the remaining entries.
func (m *Movie) RemoveGenre(id uuid.UUID) bool {
	for i := range m.Genres {
		if m.Genres[i].ID == id {
			m.Genres = append(m.Genres[:i], m.Genres[i+1:]...)
			return true
		}
	}
	return false
}
