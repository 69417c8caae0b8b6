package domain

type AppendGalleryInput struct {
	URLs []string `json:"urls" validate:"required,min=1"`
}

type RemoveMediaInput struct {
	URL string `json:"url" validate:"required"`
}

// RemoveMediaResult reports the outcome of a media removal. The record
// update is authoritative; StorageDeleted distinguishes a fully consistent
// removal from one that left an orphaned object behind.
type RemoveMediaResult struct {
	MediaURLs      []string `json:"media_urls"`
	StorageDeleted bool     `json:"storage_deleted"`
}
