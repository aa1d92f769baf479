package hospitalapi

import (
	"context"
	"fmt"
	"mediconnect-portal/internal/app/contracts"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/responses"
	"net/url"
)

type slotClient struct {
	Transport *Transport
}

func NewSlotClient(transport *Transport) contracts.SlotClient {
	return &slotClient{Transport: transport}
}

// FindByDoctorAndDate returns the server-computed slots. An empty body or a
// missing slots key is an empty list, not an error.
func (c *slotClient) FindByDoctorAndDate(ctx context.Context, session *models.Session, doctorID, date string) ([]responses.Slot, error) {
	var result responses.SlotsEnvelope
	path := fmt.Sprintf("/doctors/%s/%s/slots", url.PathEscape(doctorID), url.PathEscape(date))
	err := c.Transport.doJSON(ctx, session, constvars.MethodGet, path, nil, constvars.ResourceSlots, constvars.ErrClientFetchSlots, &result)
	if err != nil {
		return nil, err
	}
	if result.Slots == nil {
		return []responses.Slot{}, nil
	}
	return result.Slots, nil
}
