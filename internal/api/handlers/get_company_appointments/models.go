package get_company_appointments

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров.
// date задаёт один день и взаимоисключающ с startDate/endDate.
func ToServiceRequest(companyID int64, query url.Values, codec DateCodec) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{
		CompanyID: companyID,
	}

	if dateStr := query.Get("date"); dateStr != "" {
		if query.Get("startDate") != "" || query.Get("endDate") != "" {
			return nil, errors.New("date cannot be combined with startDate/endDate")
		}
		date, err := codec.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	}

	if startStr := query.Get("startDate"); startStr != "" {
		start, err := codec.ParseDate(startStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &start
	}

	if endStr := query.Get("endDate"); endStr != "" {
		end, err := codec.ParseDate(endStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &end
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if resourceID := query.Get("resourceId"); resourceID != "" {
		req.ResourceID = &resourceID
	}

	if includeStr := query.Get("includeCancelled"); includeStr != "" {
		include, err := strconv.ParseBool(includeStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled value: %w", err)
		}
		req.IncludeCancelled = include
	}

	return req, nil
}
