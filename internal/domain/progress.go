package domain

// BuildStats summarizes one pool build, stage by stage.
type BuildStats struct {
	Genre       Genre
	Pages       int // page requests issued
	Fetched     int // raw records received
	Previewable int // records left after the preview filter
	Unique      int // records left after dedupe (final pool size)
}
