package entity

// Book represents a catalog entry. Stock counts copies available for
// reservation; quantities sitting in carts have already been deducted from it.
type Book struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	AuthorID        int64   `json:"author_id"`
	ISBN            string  `json:"isbn"`
	PublicationYear int     `json:"publication_year"`
	Price           float64 `json:"price"`
	Stock           int     `json:"stock"`
}
