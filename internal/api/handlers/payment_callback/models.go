package payment_callback

import (
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	confirmPayment "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/usecase/confirm_payment"
)

// PaymentCallbackRequest HTTP request model, delivered by the payment
// collaborator.
type PaymentCallbackRequest struct {
	Reference string `json:"reference"`
	Outcome   string `json:"outcome"` // "completed" | "failed"
}

// PaymentCallbackResponse HTTP response model
type PaymentCallbackResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model.
func (r *PaymentCallbackRequest) ToUseCaseRequest() *confirmPayment.Request {
	return &confirmPayment.Request{
		Reference: r.Reference,
		Outcome:   r.Outcome,
	}
}

// FromUseCaseResponse converts the usecase response into the HTTP response.
func FromUseCaseResponse(resp *confirmPayment.Response) *PaymentCallbackResponse {
	return &PaymentCallbackResponse{
		ID:        resp.ID,
		Reference: resp.Reference,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Status:    resp.Status,
	}
}
