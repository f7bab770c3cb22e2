package dto

type UploadResponse struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}
