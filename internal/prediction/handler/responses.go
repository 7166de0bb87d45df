package handler

import "picoplaca/internal/prediction"

// PredictResponse is the HTTP response for POST /predict.
type PredictResponse struct {
	Plate        string `json:"plate"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	CanCirculate bool   `json:"can_circulate"`
	Reason       string `json:"reason"`
	Source       string `json:"source"`
	Message      string `json:"message"`
}

// FromVerdict converts a domain verdict to an HTTP response.
func FromVerdict(v *prediction.Verdict) *PredictResponse {
	return &PredictResponse{
		Plate:        v.Plate.String(),
		Date:         v.Date.String(),
		Time:         v.Time.String(),
		CanCirculate: v.CanCirculate,
		Reason:       string(v.Reason),
		Source:       v.Source,
		Message:      v.Message(),
	}
}
