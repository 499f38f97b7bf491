package domain

// MovieUpdate is a partial movie update. Nil fields are left
// untouched; a supplied Actors or Genres slice replaces the embedded
// collection wholesale.
type MovieUpdate struct {
	Title       *string
	Director    *string
	ReleaseYear *int
	Actors      *[]Actor
	Genres      *[]Genre
}

// Apply merges the update into the movie.
func (u MovieUpdate) Apply(m *Movie) {
	if u.Title != nil {
		m.Title = *u.Title
	}
	if u.Director != nil {
		m.Director = *u.Director
	}
	if u.ReleaseYear != nil {
		m.ReleaseYear = *u.ReleaseYear
	}
	if u.Actors != nil {
		m.Actors = *u.Actors
	}
	if u.Genres != nil {
		m.Genres = *u.Genres
	}
}

// ActorPatch is a partial actor update. Only supplied fields change.
type ActorPatch struct {
	Name    *string
	Surname *string
	Age     *int
	Country *string
}

// Apply merges the patch into the actor.
func (p ActorPatch) Apply(a *Actor) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Surname != nil {
		a.Surname = *p.Surname
	}
	if p.Age != nil {
		a.Age = *p.Age
	}
	if p.Country != nil {
		a.Country = *p.Country
	}
}

// GenrePatch is a partial genre update. Only supplied fields change.
type GenrePatch struct {
	Name        *string
	Description *string
}

// Apply merges the patch into the genre.
func (p GenrePatch) Apply(g *Genre) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
}
