package posts

type CreatePostRequest struct {
	TitleFr   string `json:"title_fr"`
	TitleDe   string `json:"title_de"`
	ContentFr string `json:"content_fr"`
	ContentDe string `json:"content_de"`
	// Img64 is an optional image data URI; the post keeps its placeholder
	// image when absent.
	Img64 string `json:"img64"`
}

type UpdatePostRequest struct {
	ID string `json:"id"`
	CreatePostRequest
}
