package request

const (
	DefaultSkip = 0
	DefaultTake = 10
)

// ListMoviesRequest carries the offset/limit query parameters of a listing.
type ListMoviesRequest struct {
	Skip int `json:"skip" validate:"min=0"`
	Take int `json:"take" validate:"min=0"`
}
