package models

// ImageUpload is an image attached to a multipart request.
type ImageUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

type CommentInput struct {
	Review string `json:"review"`
	Rating int    `json:"rating"`
}

type RestaurantInput struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Locations   []Location   `json:"locations"`
	Image       *ImageUpload `json:"-"`
}

type AccountInput struct {
	Username string       `json:"username"`
	Email    string       `json:"email"`
	Password string       `json:"password,omitempty"`
	Image    *ImageUpload `json:"-"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
