package course

import (
	"strconv"
	"strings"
)

// Field alias lists, first present non-empty key wins. Records come from several
// generations of the catalog schema so the same attribute may have different names.
var (
	idKeys          = []string{"_id", "id", "ID", "Id"}
	titleKeys       = []string{"Title", "title", "name", "Name"}
	descriptionKeys = []string{"Description", "description", "desc"}
	categoryKeys    = []string{"Category", "category", "Category_Id", "category_id"}
	tagKeys         = []string{"Tags", "tags", "keywords"}
	instructorKeys  = []string{"Instructor_Name", "instructorName", "Instructor", "instructor"}
	levelKeys       = []string{"Level", "level", "difficulty"}
	priceKeys       = []string{"Price", "price"}
	ratingKeys      = []string{"Rating", "rating", "averageRating"}
	activeKeys      = []string{"isActive", "Is_Active", "active"}
)

// Canonical field names written by Record.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldTags        = "tags"
	FieldInstructor  = "instructor"
	FieldLevel       = "level"
	FieldPrice       = "price"
	FieldRating      = "rating"
	FieldActive      = "active"
)

// FromRecord maps a loosely shaped record onto a Course. Missing or malformed
// attributes degrade to empty/zero values; only a missing ID is an error.
func FromRecord(rec map[string]string) (Course, error) {
	return New(Fields{
		ID:          first(rec, idKeys),
		Title:       first(rec, titleKeys),
		Description: first(rec, descriptionKeys),
		Category:    first(rec, categoryKeys),
		Tags:        first(rec, tagKeys),
		Instructor:  first(rec, instructorKeys),
		Level:       parseLevel(first(rec, levelKeys)),
		Price:       parseFloat(first(rec, priceKeys)),
		Rating:      parseFloat(first(rec, ratingKeys)),
		Active:      parseActive(first(rec, activeKeys)),
	})
}

// Record returns the course as a flat map with canonical field names.
func (c *Course) Record() map[string]string {
	return map[string]string{
		FieldID:          c.id,
		FieldTitle:       c.title,
		FieldDescription: c.description,
		FieldCategory:    c.category,
		FieldTags:        c.tags,
		FieldInstructor:  c.instructor,
		FieldLevel:       string(c.level),
		FieldPrice:       strconv.FormatFloat(c.price, 'f', -1, 64),
		FieldRating:      strconv.FormatFloat(c.rating, 'f', -1, 64),
		FieldActive:      strconv.FormatBool(c.active),
	}
}

func first(rec map[string]string, keys []string) string {
	for _, k := range keys {
		if v, ok := rec[k]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// parseLevel accepts any casing of the known levels; unknown values are kept verbatim.
func parseLevel(s string) Level {
	s = strings.TrimSpace(s)
	for _, l := range []Level{Beginner, Intermediate, Advanced} {
		if strings.EqualFold(s, string(l)) {
			return l
		}
	}
	return Level(s)
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseActive treats absent or unparseable flags as active.
func parseActive(s string) bool {
	if s == "" {
		return true
	}
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return true
	}
	return v
}
