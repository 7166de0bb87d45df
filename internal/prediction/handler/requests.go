package handler

import "picoplaca/internal/prediction"

// PredictRequest is the HTTP request body for POST /predict. Validation of the
// individual fields happens in the prediction service so HTTP callers and the
// CLI get identical error ordering.
type PredictRequest struct {
	Plate  string `json:"plate"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Online bool   `json:"online"`
}

// ToRequest converts the body to a domain request.
func (r PredictRequest) ToRequest() prediction.Request {
	return prediction.Request{
		Plate:  r.Plate,
		Date:   r.Date,
		Time:   r.Time,
		Online: r.Online,
	}
}
