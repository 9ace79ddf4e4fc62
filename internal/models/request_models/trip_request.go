package request_models

type TripRequest struct {
	Origin      string   `json:"origin" binding:"required"`
	Destination string   `json:"destination" binding:"required"`
	Preferences []string `json:"preferences"`
	Duration    int      `json:"duration" binding:"required,gt=0"`
	UserID      int64    `json:"user_id"`
}

// Normalized fills the defaults the original request may omit: the shared
// demo user and an empty (not nil) preference list.
func (r TripRequest) Normalized() TripRequest {
	if r.UserID == 0 {
		r.UserID = 1
	}
	if r.Preferences == nil {
		r.Preferences = []string{}
	}
	return r
}
