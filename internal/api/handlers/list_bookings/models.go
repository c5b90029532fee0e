package list_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/bookings/models"
)

// ParseQuery builds the service request from query parameters.
// Supported: analystId, global (true = global schedule only), startDate,
// endDate (YYYY-MM-DD), status, includeCancelled.
func ParseQuery(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		GlobalOnly:       query.Get("global") == "true",
		IncludeCancelled: query.Get("includeCancelled") == "true",
	}

	if analystIDStr := query.Get("analystId"); analystIDStr != "" {
		id, err := strconv.ParseInt(analystIDStr, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid analyst ID %q", analystIDStr)
		}
		req.AnalystID = &id
	}

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q", startDateStr)
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid end date %q", endDateStr)
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	return req, nil
}
