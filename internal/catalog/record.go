package catalog

import "strings"

// MissingCategory is shown when an artwork carries no category titles.
const MissingCategory = "N/A"

// Record is one artwork as displayed in the grid. ID is its only identity.
type Record struct {
	ID             int    `json:"id" yaml:"id" parquet:"id"`
	Title          string `json:"title" yaml:"title" parquet:"title"`
	CategoryTitles string `json:"category_titles" yaml:"category_titles" parquet:"category_titles"`
}

// Page is one normalized page of the remote collection.
type Page struct {
	Number     int
	Records    []Record
	Total      int
	TotalPages int
	Limit      int
}

// rawArtwork mirrors an item of the artworks endpoint. Pointers distinguish null from empty.
type rawArtwork struct {
	ID             int      `json:"id"`
	Title          *string  `json:"title"`
	CategoryTitles []string `json:"category_titles"`
}

type rawPagination struct {
	Total       int `json:"total"`
	Limit       int `json:"limit"`
	Offset      int `json:"offset"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

type rawPage struct {
	Data       *[]rawArtwork  `json:"data"`
	Pagination *rawPagination `json:"pagination"`
}

// JoinCategories collapses category labels into the single display string.
func JoinCategories(titles []string) string {
	if len(titles) == 0 {
		return MissingCategory
	}
	return strings.Join(titles, ", ")
}

func normalize(raw rawArtwork) Record {
	r := Record{ID: raw.ID, CategoryTitles: JoinCategories(raw.CategoryTitles)}
	if raw.Title != nil {
		r.Title = *raw.Title
	}
	return r
}

func normalizePage(number int, raw rawPage) Page {
	items := *raw.Data
	records := make([]Record, 0, len(items))
	for _, item := range items {
		records = append(records, normalize(item))
	}
	return Page{
		Number:     number,
		Records:    records,
		Total:      raw.Pagination.Total,
		TotalPages: raw.Pagination.TotalPages,
		Limit:      raw.Pagination.Limit,
	}
}
