package get_available_slots

import (
	"time"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
	getAvailableSlots "github.com/syednazrin/Amresearch-platform-sub000/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string   `json:"date"`
	AnalystID *int64   `json:"analystId,omitempty"`
	Slots     []string `json:"slots"`
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		AnalystID: resp.Scope.AnalystRef(),
		Slots:     slots,
	}
}

// ToUseCaseRequest builds the use case request from query parameters.
func ToUseCaseRequest(dateStr string, analystID *int64) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date:      date,
		AnalystID: analystID,
	}, nil
}
