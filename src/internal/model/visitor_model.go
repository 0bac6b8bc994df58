package model

type TrackVisitRequest struct {
	Path     string `json:"path" validate:"required,max=512"`
	Referrer string `json:"referrer" validate:"max=512"`

	// Filled from the request context, never from the body.
	ClientIP  string `json:"-"`
	UserAgent string `json:"-"`
	SessionID string `json:"-"`
	Country   string `json:"-"`
}

type ActiveCountResponse struct {
	Count     int  `json:"count"`
	Connected bool `json:"connected"`
}
