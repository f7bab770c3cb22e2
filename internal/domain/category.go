package domain

type Category struct {
	ID           int64  `db:"id"`
	CategoryName string `db:"category_name"`
	Slug         string `db:"slug"`
}
