package dto

type Filter struct {
	Offset int    `query:"offset"`
	Q      string `query:"q"`
	Status string `query:"status"`
}
