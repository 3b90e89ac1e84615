package course

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/learnrec/internal/domain"
)

// Level is the difficulty level of a course.
type Level string

const (
	// Beginner is the entry difficulty level and the default when a record has none.
	Beginner Level = "Beginner"
	// Intermediate is the middle difficulty level.
	Intermediate Level = "Intermediate"
	// Advanced is the highest difficulty level.
	Advanced Level = "Advanced"
)

// Fields carries raw course attributes into New.
type Fields struct {
	ID          string
	Title       string
	Description string
	Category    string
	Tags        string // free text, comma or space delimited
	Instructor  string
	Level       Level
	Price       float64
	Rating      float64
	Active      bool
}

// Course is a catalog course record (immutable value object).
type Course struct {
	id          string
	title       string
	description string
	category    string
	tags        string
	instructor  string
	level       Level
	price       float64
	rating      float64
	active      bool
}

// New validates and creates a Course. The only hard requirement is a non-empty ID;
// every other attribute may be empty.
func New(f Fields) (Course, error) {
	id := strings.TrimSpace(f.ID)
	if id == "" {
		return Course{}, fmt.Errorf("%w: title %q", domain.ErrMissingCourseID, f.Title)
	}
	return Course{
		id:          id,
		title:       f.Title,
		description: f.Description,
		category:    f.Category,
		tags:        f.Tags,
		instructor:  f.Instructor,
		level:       f.Level,
		price:       f.Price,
		rating:      f.Rating,
		active:      f.Active,
	}, nil
}

// ID returns the course identifier.
func (c *Course) ID() string { return c.id }

// Title returns the course title.
func (c *Course) Title() string { return c.title }

// Description returns the long description.
func (c *Course) Description() string { return c.description }

// Category returns the category label as stored.
func (c *Course) Category() string { return c.category }

// Tags returns the raw tag string.
func (c *Course) Tags() string { return c.tags }

// Instructor returns the instructor display name. Not used for scoring.
func (c *Course) Instructor() string { return c.instructor }

// Level returns the difficulty level, empty if the record has none.
func (c *Course) Level() Level { return c.level }

// Price returns the list price. Not used for scoring.
func (c *Course) Price() float64 { return c.price }

// Rating returns the average learner rating, used as the popularity proxy.
func (c *Course) Rating() float64 { return c.rating }

// Active reports whether the course is published.
func (c *Course) Active() bool { return c.active }

// Fields returns a copy of the attributes for serialization.
func (c *Course) Fields() Fields {
	return Fields{
		ID:          c.id,
		Title:       c.title,
		Description: c.description,
		Category:    c.category,
		Tags:        c.tags,
		Instructor:  c.instructor,
		Level:       c.level,
		Price:       c.price,
		Rating:      c.rating,
		Active:      c.active,
	}
}
